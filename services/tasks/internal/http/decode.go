package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/sun1tar/tasks-api/services/tasks/internal/models"
)

// Максимальный размер тела запроса
const maxBodySize = 100 << 10 // 100KB

var errMalformedBody = errors.New("malformed request body")

// decodePayload читает тело как JSON или urlencoded-форму.
// Тело другого типа или пустое тело дают пустой payload.
func decodePayload(w http.ResponseWriter, r *http.Request) (models.Payload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
		}
		payload := make(models.Payload, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) == 1 {
				payload[key] = values[0]
				continue
			}
			// Повторяющийся ключ становится массивом и не проходит проверку типа
			list := make([]any, len(values))
			for i, v := range values {
				list[i] = v
			}
			payload[key] = list
		}
		return payload, nil

	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		return decodeJSONPayload(body)

	default:
		return models.Payload{}, nil
	}
}

// decodeJSONPayload принимает только объект или массив на верхнем уровне.
// Массив не содержит полей задачи и даёт пустой payload.
func decodeJSONPayload(body []byte) (models.Payload, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return models.Payload{}, nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value must be an object or array", errMalformedBody)
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if obj, ok := v.(map[string]any); ok {
		return models.Payload(obj), nil
	}
	return models.Payload{}, nil
}

// parseID разбирает ведущее целое число из сегмента пути ("2abc" -> 2,
// "0x1A" -> 26). Если цифр нет, id не совпадёт ни с одной задачей.
func parseID(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return int(n), true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	default:
		return false
	}
}

package core

import "strings"

const RedactedValue = "[REDACTED]"

func RedactSensitiveMap(metadata map[string]any) map[string]any {
	if len(metadata) == 0 {
		return map[string]any{}
	}
	return redactSensitiveMap(metadata)
}

// RedactFormPayload renders a payload as a field map safe for logs and
// scenario descriptions. Credential-bearing fields keep their name but
// lose their value.
func RedactFormPayload(payload FormPayload) map[string]string {
	fields := payload.Fields()
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		if shouldRedactKey(field.Name) {
			out[field.Name] = RedactedValue
			continue
		}
		out[field.Name] = field.Value
	}
	return out
}

func redactSensitiveMap(source map[string]any) map[string]any {
	target := make(map[string]any, len(source))
	for key, value := range source {
		if shouldRedactKey(key) {
			target[key] = RedactedValue
			continue
		}
		target[key] = redactSensitiveValue(value)
	}
	return target
}

func redactSensitiveValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return redactSensitiveMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = redactSensitiveValue(typed[i])
		}
		return out
	default:
		return value
	}
}

func shouldRedactKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || isTraceabilityKey(key) {
		return false
	}
	sensitiveTokens := []string{
		"password",
		"secret",
		"token",
		"authorization",
		"api_key",
		"apikey",
		"access_key",
		"credential",
		"signature",
		"bypass",
	}
	for _, token := range sensitiveTokens {
		if strings.Contains(key, token) {
			return true
		}
	}
	return false
}

func isTraceabilityKey(key string) bool {
	switch key {
	case "run_id",
		"scenario",
		"target_id",
		"message_id",
		"status",
		"status_code",
		"duration_ms",
		"trace_id",
		"request_id":
		return true
	default:
		return false
	}
}

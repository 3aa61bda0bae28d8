package core

import "testing"

func TestRedactSensitiveMapPreservesTraceabilityMetadata(t *testing.T) {
	redacted := RedactSensitiveMap(map[string]any{
		"run_id":        "run_1",
		"scenario":      "browser-fix",
		"message_id":    "test-browser-fix-success",
		"token":         "testtoken",
		"signature":     "testsig",
		"authorization": "Bearer secret",
		"nested":        map[string]any{"api_key": "key_1", "run_id": "run_nested"},
		"events":        []any{map[string]any{"secret": "s1"}, map[string]any{"status": "delivered"}},
	})

	if redacted["run_id"] != "run_1" {
		t.Fatalf("expected run_id to remain visible, got %#v", redacted["run_id"])
	}
	if redacted["scenario"] != "browser-fix" {
		t.Fatalf("expected scenario to remain visible, got %#v", redacted["scenario"])
	}
	if redacted["message_id"] != "test-browser-fix-success" {
		t.Fatalf("expected message_id to remain visible, got %#v", redacted["message_id"])
	}
	if redacted["token"] != RedactedValue {
		t.Fatalf("expected token to be redacted, got %#v", redacted["token"])
	}
	if redacted["signature"] != RedactedValue {
		t.Fatalf("expected signature to be redacted, got %#v", redacted["signature"])
	}
	nested, ok := redacted["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested redacted map")
	}
	if nested["api_key"] != RedactedValue {
		t.Fatalf("expected nested api_key to be redacted, got %#v", nested["api_key"])
	}
	if nested["run_id"] != "run_nested" {
		t.Fatalf("expected nested run_id to remain visible, got %#v", nested["run_id"])
	}
	events, ok := redacted["events"].([]any)
	if !ok || len(events) != 2 {
		t.Fatalf("expected redacted events slice, got %#v", redacted["events"])
	}
	first, ok := events[0].(map[string]any)
	if !ok || first["secret"] != RedactedValue {
		t.Fatalf("expected event secret to be redacted, got %#v", events[0])
	}
}

func TestRedactFormPayload_MasksCredentialFields(t *testing.T) {
	payload := FormPayload{
		Timestamp: "1754925000",
		Token:     "testtoken",
		Signature: "testsig",
		Recipient: "upload@example.com",
		Sender:    "probe@example.com",
		Subject:   "Probe",
		BodyPlain: "plain",
		BodyHTML:  "<p>plain</p>",
		MessageID: "probe-1",
	}

	fields := RedactFormPayload(payload)
	if fields[FieldToken] != RedactedValue {
		t.Fatalf("expected token field to be redacted, got %q", fields[FieldToken])
	}
	if fields[FieldSignature] != RedactedValue {
		t.Fatalf("expected signature field to be redacted, got %q", fields[FieldSignature])
	}
	if fields[FieldSubject] != "Probe" {
		t.Fatalf("expected subject to remain visible, got %q", fields[FieldSubject])
	}
	if fields[FieldMessageID] != "probe-1" {
		t.Fatalf("expected message id to remain visible, got %q", fields[FieldMessageID])
	}
	if len(fields) != len(FormFields()) {
		t.Fatalf("expected all %d fields, got %d", len(FormFields()), len(fields))
	}
}

package errors

import "testing"

func TestGet(t *testing.T) {
	def := Get("ALREADY_CHECKED_IN")
	if def.Message != "Please check out first." {
		t.Errorf("Get(ALREADY_CHECKED_IN).Message = %q", def.Message)
	}

	unknown := Get("NOT_A_REAL_CODE")
	if unknown.Code != "NOT_A_REAL_CODE" || unknown.Message != "Unexpected error" {
		t.Errorf("Get(unknown) = %+v", unknown)
	}
}

func TestDefinitionError(t *testing.T) {
	var err error = UserUnavailable
	if err.Error() != UserUnavailable.Message {
		t.Errorf("Error() = %q, want %q", err.Error(), UserUnavailable.Message)
	}
}

func TestLookupCoversAllDefinitions(t *testing.T) {
	for code, def := range Lookup {
		if code != def.Code {
			t.Errorf("Lookup key %q does not match definition code %q", code, def.Code)
		}
		if def.Message == "" {
			t.Errorf("definition %q has empty message", code)
		}
	}
}

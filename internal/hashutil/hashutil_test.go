package hashutil

import (
	"strings"
	"testing"
)

func TestCallbackData(t *testing.T) {
	t.Parallel()

	data := CallbackData("pause")
	if !strings.HasPrefix(data, "pause:") {
		t.Errorf("expected pause prefix, got %s", data)
	}

	if len(data) > 64 {
		t.Errorf("callback data too long: %d", len(data))
	}

	long := CallbackData(strings.Repeat("x", 80))
	if len(long) != 64 {
		t.Errorf("expected truncated data, got %d bytes", len(long))
	}
}

func TestSerializedSha1FromTime(t *testing.T) {
	t.Parallel()

	if got := SerializedSha1FromTime(); len(got) != 40 {
		t.Errorf("expected 40 hex chars, got %d", len(got))
	}
}

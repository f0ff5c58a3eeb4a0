package editorui

import (
	"strings"
	"testing"
	"time"
)

func TestToastState_Update(t *testing.T) {
	ts := &ToastState{}
	ts.ToastInfo("short")
	ts.Toast("long", ToastTypeError, 10*time.Second)

	ts.Update(2 * time.Second)
	if len(ts.Toasts) != 2 {
		t.Fatalf("Expected 2 toasts, got %d", len(ts.Toasts))
	}
	ts.Update(time.Second)
	if len(ts.Toasts) != 1 || ts.Toasts[0].Message != "long" {
		t.Fatalf("Expected only the long toast to remain, got %+v", ts.Toasts)
	}
	if ts.Toasts[0].Elapsed != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", ts.Toasts[0].Elapsed)
	}
}

func TestToastState_CapsPending(t *testing.T) {
	ts := &ToastState{}
	for range ToastMaxVisible*2 + 1 {
		ts.ToastWarning("w")
	}
	if len(ts.Toasts) != ToastMaxVisible {
		t.Errorf("Expected list trimmed to %d, got %d", ToastMaxVisible, len(ts.Toasts))
	}
}

func TestToastNotification_Opacity(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{0, 0},
		{75 * time.Millisecond, 0.5},
		{time.Second, 1},
	}
	for _, tt := range tests {
		n := ToastNotification{Duration: 10 * time.Second, Elapsed: tt.elapsed}
		if got := n.opacity(); got != tt.want {
			t.Errorf("Expected opacity %v at %v, got %v", tt.want, tt.elapsed, got)
		}
	}
	done := ToastNotification{Duration: 10 * time.Second, Elapsed: 10 * time.Second}
	if got := done.opacity(); got > 0.001 {
		t.Errorf("Expected faded out toast, got opacity %v", got)
	}
}

func TestToastState_Draw(t *testing.T) {
	ts := &ToastState{}
	ts.ToastSuccess("saved")
	ts.Update(time.Second)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	ts.Draw(dl, Rect{W: 800, H: 600}, DefaultStyle())
	if len(dl.CmdBuffer) == 0 {
		t.Error("Expected toast draw commands")
	}

	var empty *ToastState
	empty.Draw(dl, Rect{W: 800, H: 600}, DefaultStyle())
}

func TestEditor_ToastsOnRejectedEdit(t *testing.T) {
	ed := newTestEditor(t)
	p, _ := newTestPanel()
	ed.AddPanel("PropertyGridWindow", p)
	ed.Toasts.Toasts = nil

	if p.HandlePropertyEdit("fov", FloatValue(500)) {
		t.Fatal("Expected out-of-range edit to be rejected")
	}
	if len(ed.Toasts.Toasts) != 1 {
		t.Fatalf("Expected 1 toast, got %d", len(ed.Toasts.Toasts))
	}
	toast := ed.Toasts.Toasts[0]
	if toast.Type != ToastTypeWarning || !strings.HasPrefix(toast.Message, "Field of View: ") {
		t.Errorf("Expected labelled warning, got %+v", toast)
	}
}

func TestEditor_ToastsOnLayoutLoad(t *testing.T) {
	ed := newTestEditor(t)
	if len(ed.Toasts.Toasts) != 1 || ed.Toasts.Toasts[0].Message != `Layout "Default" loaded` {
		t.Fatalf("Expected a toast for the Default preset, got %+v", ed.Toasts.Toasts)
	}
	ed.Frame(nil, testViewport, DefaultToastDuration)
	if len(ed.Toasts.Toasts) != 0 {
		t.Errorf("Expected toast to expire, got %d", len(ed.Toasts.Toasts))
	}
}

package editorui

import "time"

// ToastType defines the type of toast notification.
type ToastType uint8

const (
	ToastTypeInfo ToastType = iota
	ToastTypeSuccess
	ToastTypeWarning
	ToastTypeError
)

// ToastNotification is a single toast message.
type ToastNotification struct {
	Message  string
	Type     ToastType
	Duration time.Duration
	Elapsed  time.Duration
}

// DefaultToastDuration is how long a toast stays up unless told otherwise.
const DefaultToastDuration = 3 * time.Second

// ToastMaxVisible is the maximum number of toasts drawn at once.
const ToastMaxVisible = 5

// ToastState holds the editor's pending notifications: layout loads and
// rejected property edits.
type ToastState struct {
	Toasts []ToastNotification
}

// Toast adds a notification. Without a duration DefaultToastDuration is used.
func (ts *ToastState) Toast(message string, toastType ToastType, duration ...time.Duration) {
	dur := DefaultToastDuration
	if len(duration) > 0 && duration[0] > 0 {
		dur = duration[0]
	}
	ts.Toasts = append(ts.Toasts, ToastNotification{Message: message, Type: toastType, Duration: dur})

	if len(ts.Toasts) > ToastMaxVisible*2 {
		ts.Toasts = ts.Toasts[len(ts.Toasts)-ToastMaxVisible:]
	}
}

// ToastInfo adds an info toast.
func (ts *ToastState) ToastInfo(message string) { ts.Toast(message, ToastTypeInfo) }

// ToastSuccess adds a success toast.
func (ts *ToastState) ToastSuccess(message string) { ts.Toast(message, ToastTypeSuccess) }

// ToastWarning adds a warning toast.
func (ts *ToastState) ToastWarning(message string) { ts.Toast(message, ToastTypeWarning) }

// ToastError adds an error toast.
func (ts *ToastState) ToastError(message string) { ts.Toast(message, ToastTypeError) }

// Update advances toast timers by dt and drops expired toasts.
func (ts *ToastState) Update(dt time.Duration) {
	active := ts.Toasts[:0]
	for i := range ts.Toasts {
		ts.Toasts[i].Elapsed += dt
		if ts.Toasts[i].Elapsed < ts.Toasts[i].Duration {
			active = append(active, ts.Toasts[i])
		}
	}
	clear(ts.Toasts[len(active):])
	ts.Toasts = active
}

// opacity fades a toast in over its first 150ms and out over its last 30%.
func (t *ToastNotification) opacity() float32 {
	const fadeIn = 150 * time.Millisecond
	const fadeOutStart = 0.7
	elapsed, total := float32(t.Elapsed), float32(t.Duration)
	switch {
	case t.Elapsed < fadeIn:
		return elapsed / float32(fadeIn)
	case elapsed > total*fadeOutStart:
		return 1 - (elapsed-total*fadeOutStart)/(total*(1-fadeOutStart))
	}
	return 1
}

// Draw renders the newest toasts stacked upward from the bottom-right corner
// of viewport. Call it after everything else.
func (ts *ToastState) Draw(dl *DrawList, viewport Rect, style Style) {
	if ts == nil || len(ts.Toasts) == 0 {
		return
	}
	const (
		paddingX = float32(12)
		paddingY = float32(8)
		margin   = float32(10)
		gap      = float32(6)
	)
	baseX := viewport.X + viewport.W - margin
	baseY := viewport.Y + viewport.H - margin
	startIdx := max(len(ts.Toasts)-ToastMaxVisible, 0)

	for i := len(ts.Toasts) - 1; i >= startIdx; i-- {
		toast := &ts.Toasts[i]
		opacity := toast.opacity()
		if opacity <= 0 {
			continue
		}

		icon := toastIcon(toast.Type) + " "
		iconW := style.TextWidth(icon)
		textW := style.TextWidth(toast.Message)
		maxW := max(viewport.W-2*margin-iconW-2*paddingX, 0)
		textW = min(textW, maxW)
		box := Rect{
			W: iconW + textW + paddingX*2,
			H: style.CharHeight*style.FontScale + paddingY*2,
		}
		box.X = baseX - box.W
		box.Y = baseY - box.H

		dl.AddRect(box, WithAlpha(toastColor(style, toast.Type), 0.9*opacity))
		dl.AddRectOutline(box, RGBA(255, 255, 255, uint8(60*opacity)), 1)
		textColor := WithAlpha(style.TextColor, opacity)
		dl.AddText(Vec2{X: box.X + paddingX, Y: box.Y + paddingY}, icon, textColor, style)
		dl.AddTextClipped(Vec2{X: box.X + paddingX + iconW, Y: box.Y + paddingY}, toast.Message, textW, textColor, style)

		baseY -= box.H + gap
	}
}

func toastColor(style Style, t ToastType) uint32 {
	switch t {
	case ToastTypeSuccess:
		return style.ToastSuccessColor
	case ToastTypeWarning:
		return style.ToastWarningColor
	case ToastTypeError:
		return style.ToastErrorColor
	default:
		return style.ToastInfoColor
	}
}

func toastIcon(t ToastType) string {
	switch t {
	case ToastTypeSuccess:
		return "+"
	case ToastTypeWarning:
		return "!"
	case ToastTypeError:
		return "X"
	default:
		return "i"
	}
}

package editorui

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
)

// Style defines the visual appearance of dock spaces, tabs and property rows.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Dock spaces
	DockBgColor       uint32
	DockBorderColor   uint32
	SplitterColor     uint32
	SplitterHotColor  uint32
	FloatingBgColor   uint32
	TitleBarColor     uint32
	TitleBarTextColor uint32

	// Tabs
	TabColor       uint32
	TabActiveColor uint32
	TabHoverColor  uint32
	FocusColor     uint32

	// Drag feedback
	PreviewColor       uint32
	PreviewBorderColor uint32
	GuideColor         uint32

	// Property rows
	RowBgColor        uint32
	RowBgAltColor     uint32
	CategoryBgColor   uint32
	InputBgColor      uint32
	InputActiveColor  uint32
	InvalidValueColor uint32

	// Toasts
	ToastInfoColor    uint32
	ToastSuccessColor uint32
	ToastWarningColor uint32
	ToastErrorColor   uint32

	// Sizing
	FontScale         float32
	CharWidth         float32
	CharHeight        float32
	TabBarHeight      float32
	TitleBarHeight    float32
	SplitterThickness float32
	RowHeight         float32
	LabelWidth        float32
	BorderSize        float32
}

// DefaultStyle returns the dark editor style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		DockBgColor:       RGBA(37, 37, 38, 255),
		DockBorderColor:   RGBA(63, 63, 70, 255),
		SplitterColor:     RGBA(45, 45, 48, 255),
		SplitterHotColor:  RGBA(0, 122, 204, 255),
		FloatingBgColor:   RGBA(30, 30, 30, 240),
		TitleBarColor:     RGBA(45, 45, 48, 255),
		TitleBarTextColor: ColorWhite,

		TabColor:       RGBA(45, 45, 48, 255),
		TabActiveColor: RGBA(0, 122, 204, 255),
		TabHoverColor:  RGBA(62, 62, 64, 255),
		FocusColor:     RGBA(0, 180, 255, 255),

		PreviewColor:       RGBA(0, 122, 204, 80),
		PreviewBorderColor: RGBA(0, 122, 204, 200),
		GuideColor:         RGBA(0, 180, 255, 150),

		RowBgColor:        RGBA(37, 37, 38, 255),
		RowBgAltColor:     RGBA(42, 42, 44, 255),
		CategoryBgColor:   RGBA(51, 51, 55, 255),
		InputBgColor:      RGBA(30, 30, 30, 255),
		InputActiveColor:  RGBA(40, 40, 50, 255),
		InvalidValueColor: RGBA(180, 60, 60, 255),

		ToastInfoColor:    RGBA(40, 90, 140, 255),
		ToastSuccessColor: RGBA(40, 120, 60, 255),
		ToastWarningColor: RGBA(160, 110, 30, 255),
		ToastErrorColor:   RGBA(160, 40, 40, 255),

		FontScale:         1.0,
		CharWidth:         7,
		CharHeight:        13,
		TabBarHeight:      22,
		TitleBarHeight:    20,
		SplitterThickness: 4,
		RowHeight:         20,
		LabelWidth:        120,
		BorderSize:        1,
	}
}

// TextWidth returns the width of s rendered with the style's fixed-width font.
func (s Style) TextWidth(text string) float32 {
	return float32(graphemeCount(text)) * s.CharWidth * s.FontScale
}

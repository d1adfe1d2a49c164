package style

const (
	StyleBold    = "\x02"
	StyleItalics = "\x1D"
	StyleReset   = "\x0F"
)

func Bold(s string) string {
	return StyleBold + s + StyleBold
}

func Italics(s string) string {
	return StyleItalics + s + StyleItalics
}

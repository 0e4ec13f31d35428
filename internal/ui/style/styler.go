package style

// Stylist is what output code needs from this package. Commands take one so
// tests can pass NopStyler.
type Stylist interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
	Verb(text string) string
	Key(text string) string
	Value(text string) string
}

// Styler implements Stylist using the package-level style functions.
type Styler struct{}

// NewStyler creates a new Styler instance.
func NewStyler() *Styler {
	return &Styler{}
}

func (s *Styler) Enabled() bool              { return Enabled() }
func (s *Styler) Success(text string) string { return Success(text) }
func (s *Styler) Warning(text string) string { return Warning(text) }
func (s *Styler) Error(text string) string   { return Error(text) }
func (s *Styler) Info(text string) string    { return Info(text) }
func (s *Styler) Muted(text string) string   { return Muted(text) }
func (s *Styler) Header(text string) string  { return Header(text) }
func (s *Styler) Verb(text string) string    { return Verb(text) }
func (s *Styler) Key(text string) string     { return Key(text) }
func (s *Styler) Value(text string) string   { return Value(text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }
func (NopStyler) Verb(text string) string    { return text }
func (NopStyler) Key(text string) string     { return text }
func (NopStyler) Value(text string) string   { return text }

var (
	_ Stylist = (*Styler)(nil)
	_ Stylist = NopStyler{}
)

package prefs

// Store persists the two device-scoped preference keys (language, currency).
// It is best-effort by contract: the state store logs and carries on when a
// save fails, and falls back to defaults when a load does.
type Store interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

const (
	KeyLanguage = "preferred-language"
	KeyCurrency = "preferred-currency"
)

// Memory keeps preferences for the lifetime of the process.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Load(key string) (string, error) {
	return m.values[key], nil
}

func (m *Memory) Save(key, value string) error {
	m.values[key] = value
	return nil
}

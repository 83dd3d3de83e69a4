package domain

// Well-known stat keys. Stats are free-form otherwise.
const (
	StatHP         = "HP"
	StatErosion    = "침식률"
	StatErosionDie = "침식D"
)

// LoisAttribute is the reserved name rejected by the stat-delta command.
const LoisAttribute = "로이스"

// CharacterSheet is one character owned by a (server, user) pair.
// Numeric stats live in Stats; descriptor fields are typed because they
// render differently on the sheet view.
type CharacterSheet struct {
	CodeName  string `json:"codeName,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
	Cover     string `json:"cover,omitempty"`
	Works     string `json:"works,omitempty"`
	Breed     string `json:"breed,omitempty"`
	Syndromes string `json:"syndromes,omitempty"`
	Awakening string `json:"awakening,omitempty"`
	Impulse   string `json:"impulse,omitempty"`
	DLoisNo   string `json:"dloisNo,omitempty"`
	DLoisName string `json:"dloisName,omitempty"`

	Stats map[string]int `json:"stats,omitempty"`
	Lois  []Lois         `json:"lois,omitempty"`
}

// Stat returns a numeric stat, defaulting to 0 when unset.
func (c *CharacterSheet) Stat(name string) int {
	if c == nil || c.Stats == nil {
		return 0
	}
	return c.Stats[name]
}

// SetStat stores a numeric stat, allocating the map on first use.
func (c *CharacterSheet) SetStat(name string, value int) {
	if c.Stats == nil {
		c.Stats = make(map[string]int)
	}
	c.Stats[name] = value
}

// AddStat adjusts a numeric stat by delta and returns the new value.
func (c *CharacterSheet) AddStat(name string, delta int) int {
	v := c.Stat(name) + delta
	c.SetStat(name, v)
	return v
}

// DeleteAttribute removes a stat or descriptor field by key. It reports
// whether the key existed. Descriptor fields are addressed by the same
// names the original sheets used.
func (c *CharacterSheet) DeleteAttribute(key string) bool {
	if c.Stats != nil {
		if _, ok := c.Stats[key]; ok {
			delete(c.Stats, key)
			return true
		}
	}
	fields := map[string]*string{
		"codeName":  &c.CodeName,
		"emoji":     &c.Emoji,
		"cover":     &c.Cover,
		"works":     &c.Works,
		"breed":     &c.Breed,
		"syndromes": &c.Syndromes,
		"awakening": &c.Awakening,
		"impulse":   &c.Impulse,
		"dloisNo":   &c.DLoisNo,
		"dloisName": &c.DLoisName,
	}
	if f, ok := fields[key]; ok && *f != "" {
		*f = ""
		return true
	}
	return false
}

// Lois is a relationship record. The emotion labels are stored already
// formatted: an emphasized emotion reads 【P: x】, a plain one P: x.
type Lois struct {
	Name        string `json:"name"`
	PEmotion    string `json:"pEmotion"`
	NEmotion    string `json:"nEmotion"`
	Description string `json:"description"`
}

// FormatEmotion renders an emotion label for storage. A trailing '*'
// marks the emphasized emotion of the pair.
func FormatEmotion(kind, raw string) string {
	if n, ok := trimEmphasis(raw); ok {
		return "【" + kind + ": " + n + "】"
	}
	return kind + ": " + raw
}

func trimEmphasis(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			return s[:i] + s[i+1:], true
		}
	}
	return s, false
}

// UpsertLois inserts a relationship, replacing in place when the name is
// already registered. Names are unique per character.
func (c *CharacterSheet) UpsertLois(l Lois) {
	for i := range c.Lois {
		if c.Lois[i].Name == l.Name {
			c.Lois[i] = l
			return
		}
	}
	c.Lois = append(c.Lois, l)
}

// RemoveLois deletes a relationship by exact name, reporting whether it
// was present.
func (c *CharacterSheet) RemoveLois(name string) bool {
	for i := range c.Lois {
		if c.Lois[i].Name == name {
			c.Lois = append(c.Lois[:i], c.Lois[i+1:]...)
			return true
		}
	}
	return false
}

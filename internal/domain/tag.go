package domain

import "time"

type MuseumTagType string

const (
	TagMonuments      MuseumTagType = "Monuments"
	TagMuseums        MuseumTagType = "Museums"
	TagReligiousSites MuseumTagType = "Religious Sites"
	TagPalacesCastles MuseumTagType = "Palaces/Castles"
)

func (t MuseumTagType) IsValid() bool {
	switch t {
	case TagMonuments, TagMuseums, TagReligiousSites, TagPalacesCastles:
		return true
	}

	return false
}

// MuseumTag is a standalone reference entity. It is matched against museum
// tags by free text, not by foreign key.
type MuseumTag struct {
	ID               uint          `json:"id"`
	Type             MuseumTagType `json:"type"`
	HistoricalPeriod string        `json:"historical_period,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PreferenceTag struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

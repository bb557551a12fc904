package core

import "github.com/amirhossein-jamali/time-calculator/internal/domain/entity"

// DurationParser turns a free-text phrase into duration components
type DurationParser interface {
	Parse(text string) (entity.Duration, error)
}

package specification

import "gorm.io/gorm"

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByRating struct {
	Rating string
}

func (s ByRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating = ?", s.Rating)
}

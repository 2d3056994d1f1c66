package domain

import "time"

// WordPair is a stored (prompt word, accepted translation) association
// owned by one user.
type WordPair struct {
	ID        int64
	UserID    int64
	LeftWord  string
	RightWord string
	AddedAt   time.Time
}

// TrainingWord is a drawn pair decorated with every right-side translation
// the owner stored for the same left word.
type TrainingWord struct {
	WordPair
	Translations []string
}

package storage

import "errors"

// Sentinel kinds for profile persistence errors.
var (
	ErrLoadProfile = errors.New("load profile failed")
	ErrSaveProfile = errors.New("save profile failed")
)

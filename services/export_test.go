package services

import "time"

func (s *AuthService) SetClock(now func() time.Time) { s.now = now }

func (s *CatalogStore) SetClock(now func() time.Time) { s.now = now }

func (s *AuthService) SetPasswordVerifier(verify func(password, hash string) bool) { s.verify = verify }

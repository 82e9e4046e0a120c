package service

import "github.com/MKhiriev/go-vault-guard/models"

//go:generate mockgen -source=dependencies.go -destination=../mock/scorer_mock.go -package=mock

// Scorer rates a password. It is satisfied by *strength.Calculator.
type Scorer interface {
	Score(password string) models.StrengthCategory
}

// Package domain contains core concepts of the voice relay.
// This file defines the two conversation participants and their turn order.
// No runtime, network, or UI logic should be added here.
package domain

type ParticipantID string

const (
	ParticipantA ParticipantID = "A"
	ParticipantB ParticipantID = "B"
)

// Other returns the participant listening while p speaks.
func (p ParticipantID) Other() ParticipantID {
	if p == ParticipantA {
		return ParticipantB
	}
	return ParticipantA
}

func (p ParticipantID) Valid() bool {
	return p == ParticipantA || p == ParticipantB
}

func (p ParticipantID) String() string {
	return string(p)
}

type Participant struct {
	ID       ParticipantID
	Language LanguageCode
}

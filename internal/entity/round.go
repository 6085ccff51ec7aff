package entity

import "time"

const (
	StatusOngoing   = "ongoing"
	StatusFinished  = "finished"
	StatusAbandoned = "abandoned"

	OutcomeHuman = "human"
	OutcomeAgent = "agent"
	OutcomeTie   = "tie"
)

// Turn is one placed mark within a round.
type Turn struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

type Round struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	Agent      string    `json:"agent"`
	HumanMark  Mark      `json:"human_mark"`
	AgentMark  Mark      `json:"agent_mark"`
	Turns      []Turn    `json:"turns"`
	Winner     Mark      `json:"winner,omitempty"`
	Outcome    string    `json:"outcome,omitempty"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

func NewRound(id, playerID, agent string, humanMark Mark, startedAt time.Time) *Round {
	return &Round{
		ID:        id,
		PlayerID:  playerID,
		Agent:     agent,
		HumanMark: humanMark,
		AgentMark: humanMark.Opponent(),
		Turns:     make([]Turn, 0, boardSize),
		Status:    StatusOngoing,
		StartedAt: startedAt,
	}
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Round) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Abandon closes a round that was interrupted before it ended. It has no
// outcome and is neither tallied nor stored.
func (that *Round) Abandon() {
	that.Status = StatusAbandoned
}

func (that *Round) Record(cell int, mark Mark) {
	that.Turns = append(that.Turns, Turn{Cell: cell, Mark: mark})
}

// Finish closes the round. An empty winner means a tie.
func (that *Round) Finish(winner Mark, finishedAt time.Time) {
	that.Winner = winner
	that.Status = StatusFinished
	that.FinishedAt = finishedAt

	switch winner {
	case that.HumanMark:
		that.Outcome = OutcomeHuman
	case that.AgentMark:
		that.Outcome = OutcomeAgent
	default:
		that.Outcome = OutcomeTie
	}
}

// Score is the running tally of finished rounds for one player.
type Score struct {
	HumanWins int `json:"human_wins"`
	AgentWins int `json:"agent_wins"`
	Ties      int `json:"ties"`
}

func (that *Score) Add(outcome string) {
	switch outcome {
	case OutcomeHuman:
		that.HumanWins++
	case OutcomeAgent:
		that.AgentWins++
	case OutcomeTie:
		that.Ties++
	}
}

func (that *Score) Total() int {
	return that.HumanWins + that.AgentWins + that.Ties
}

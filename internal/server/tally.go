package server

import (
	"github.com/pdz-labs/team-roster/internal/roster"
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

type tallyState int

const (
	tallyAccumulating tallyState = iota
	tallyDone
	tallyAborted
)

// positionTally accumulates the per-call counters of the client-streaming
// call. Each call instance owns its own tally; nothing is shared across
// calls. Only a clean end of the inbound stream may produce a result: once
// aborted, the partial counts are discarded forever.
type positionTally struct {
	state tallyState
	dev   int32
	sre   int32
	qa    int32
	tl    int32
}

// observe classifies one resolved position. Developer, SRE and QA have
// dedicated counters; every other outcome, including a person that is not
// in the roster at all, lands in the team-lead bucket. That fallback
// mirrors the five-way position catalogue and is a deliberate catch-all,
// not a precise team-lead count.
func (t *positionTally) observe(pos roster.Position, found bool) {
	if t.state != tallyAccumulating {
		return
	}
	if !found {
		t.tl++
		return
	}
	switch pos.ID {
	case roster.CodeDeveloper:
		t.dev++
	case roster.CodeSiteReliabilityEngineer:
		t.sre++
	case roster.CodeQualityAssurance:
		t.qa++
	default:
		t.tl++
	}
}

// finalize closes the tally and returns the single result message. It
// returns nil after an abort: a partial tally is not semantically valid.
func (t *positionTally) finalize() *teamv1.EstimatePosition {
	if t.state != tallyAccumulating {
		return nil
	}
	t.state = tallyDone
	return &teamv1.EstimatePosition{
		DevCounter: t.dev,
		SreCounter: t.sre,
		QaCounter:  t.qa,
		TlCounter:  t.tl,
	}
}

func (t *positionTally) abort() {
	t.state = tallyAborted
}

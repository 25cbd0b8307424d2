// Package client drives the four roster call patterns against a remote
// endpoint, demonstrating the synchronization contract each pattern needs.
// Failures are logged and the session moves on: every call is an isolated
// attempt, never retried here.
package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

// completionTimeout bounds every wait on a streaming call's completion
// signal. Expiry is logged, not escalated.
const completionTimeout = time.Minute

type Orchestrator struct {
	api teamv1.TeamServiceClient
	log *slog.Logger
}

func New(conn grpc.ClientConnInterface, log *slog.Logger) *Orchestrator {
	return &Orchestrator{api: teamv1.NewTeamServiceClient(conn), log: log}
}

// NewWithAPI exists for tests that stub out the generated client.
func NewWithAPI(api teamv1.TeamServiceClient, log *slog.Logger) *Orchestrator {
	return &Orchestrator{api: api, log: log}
}

// Run walks through all four call patterns once.
func (o *Orchestrator) Run(ctx context.Context) {
	o.SayHello(ctx, rafinhaMember())
	o.GetTeamByPerson(ctx, tataPerson())
	o.GetMembersByPosition(ctx, developerPosition())
	o.EstimatePositionsByPersons(ctx, personsToEstimate())

	done, err := o.GetPersonsByTeam(ctx, teamsToRoute())
	if err != nil {
		return
	}
	select {
	case <-done:
	case <-time.After(completionTimeout):
		o.log.Warn("person routing did not finish within the completion timeout")
	}
}

// SayHello issues the unary greeting and waits for the single reply.
func (o *Orchestrator) SayHello(ctx context.Context, member *teamv1.Member) {
	o.log.Info("saying hello", "person", member.GetPerson().GetName())
	resp, err := o.api.SayHello(ctx, member)
	if err != nil {
		o.log.Warn("say hello failed", "status", status.Code(err), "err", err)
		return
	}
	o.log.Info("greeting received", "message", resp.GetMessage())
}

// GetTeamByPerson issues the unary lookup; an empty team means no match.
func (o *Orchestrator) GetTeamByPerson(ctx context.Context, person *teamv1.Person) {
	o.log.Info("looking up team", "person", person.GetName())
	team, err := o.api.GetTeamByPerson(ctx, person)
	if err != nil {
		o.log.Warn("team lookup failed", "status", status.Code(err), "err", err)
		return
	}
	o.log.Info("team resolved", "person", person.GetName(), "team", team.GetName())
}

// GetMembersByPosition drains the server stream to exhaustion. A fault
// mid-stream truncates the iteration and is logged.
func (o *Orchestrator) GetMembersByPosition(ctx context.Context, position *teamv1.Position) {
	o.log.Info("listing members by position", "position", position.GetName())
	stream, err := o.api.GetMembersByPosition(ctx, position)
	if err != nil {
		o.log.Warn("member listing failed", "status", status.Code(err), "err", err)
		return
	}
	for i := 1; ; i++ {
		member, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			o.log.Warn("member stream interrupted", "status", status.Code(err), "err", err)
			return
		}
		o.log.Info("member received", "n", i, "person", member.GetPerson().GetName())
	}
}

// EstimatePositionsByPersons streams the persons out, closes the send side,
// then blocks on a one-shot completion signal with a bounded timeout. The
// early-exit check between sends stops the loop once the call has already
// terminated on the server side.
func (o *Orchestrator) EstimatePositionsByPersons(ctx context.Context, persons []*teamv1.Person) {
	o.log.Info("estimating positions", "count", len(persons))
	stream, err := o.api.EstimatePositionsByPersons(ctx)
	if err != nil {
		o.log.Warn("estimate call failed to start", "status", status.Code(err), "err", err)
		return
	}

	for _, person := range persons {
		select {
		case <-stream.Context().Done():
			o.log.Warn("estimate call ended before all persons were sent", "err", stream.Context().Err())
			return
		default:
		}
		if err := stream.Send(person); err != nil {
			// io.EOF here means the call is over; the terminal status
			// surfaces from CloseAndRecv below.
			break
		}
	}

	done := make(chan struct{})
	var tally *teamv1.EstimatePosition
	var recvErr error
	go func() {
		defer close(done)
		tally, recvErr = stream.CloseAndRecv()
	}()

	select {
	case <-done:
	case <-time.After(completionTimeout):
		o.log.Warn("position estimate did not finish within the completion timeout")
		return
	}
	if recvErr != nil {
		o.log.Warn("position estimate failed", "status", status.Code(recvErr), "err", recvErr)
		return
	}
	o.log.Info("position estimate received",
		"developers", tally.GetDevCounter(),
		"sre", tally.GetSreCounter(),
		"qa", tally.GetQaCounter(),
		"team_leads", tally.GetTlCounter(),
	)
}

// GetPersonsByTeam sends the team requests, closes the send side, and
// returns the one-shot channel that fires when the inbound stream ends.
// The caller owns the bounded wait on it.
func (o *Orchestrator) GetPersonsByTeam(ctx context.Context, teams []*teamv1.Team) (<-chan struct{}, error) {
	o.log.Info("routing teams to persons", "count", len(teams))
	stream, err := o.api.GetPersonsByTeam(ctx)
	if err != nil {
		o.log.Warn("person routing failed to start", "status", status.Code(err), "err", err)
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			person, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				o.log.Info("person routing finished")
				return
			}
			if err != nil {
				o.log.Warn("person routing failed", "status", status.Code(err), "err", err)
				return
			}
			o.log.Info("person received", "id", person.GetId(), "name", person.GetName())
		}
	}()

	for _, team := range teams {
		o.log.Info("requesting persons of team", "team_id", team.GetId())
		if err := stream.Send(team); err != nil {
			break
		}
	}
	if err := stream.CloseSend(); err != nil {
		o.log.Warn("closing send side failed", "err", err)
	}
	return done, nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdz-labs/team-roster/internal/roster"
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

// TeamService answers the four roster call patterns. It holds no mutable
// state of its own: the store is read-only and every streaming call owns
// its per-call aggregator, so concurrent calls need no locking.
type TeamService struct {
	teamv1.UnimplementedTeamServiceServer

	store *roster.Store
	log   *slog.Logger
}

func NewTeamService(store *roster.Store, log *slog.Logger) *TeamService {
	return &TeamService{store: store, log: log}
}

// SayHello formats one greeting from the member's person and position
// names. Pure; it never fails for well-formed input.
func (s *TeamService) SayHello(ctx context.Context, req *teamv1.Member) (*teamv1.MessageResponse, error) {
	msg := fmt.Sprintf("Hello %s, congratulations on being a %s",
		req.GetPerson().GetName(), req.GetPosition().GetName())
	return &teamv1.MessageResponse{Message: msg}, nil
}

// GetTeamByPerson resolves the person's team. An unmatched person yields a
// well-formed empty Team; "not found" is not an error here.
func (s *TeamService) GetTeamByPerson(ctx context.Context, req *teamv1.Person) (*teamv1.Team, error) {
	team, ok := s.store.TeamOf(req.GetId())
	if !ok {
		return &teamv1.Team{}, nil
	}
	return teamToProto(team), nil
}

// GetMembersByPosition emits every member whose position equals the filter,
// then completes the stream. Zero matches is an empty, successful stream.
func (s *TeamService) GetMembersByPosition(req *teamv1.Position, stream teamv1.TeamService_GetMembersByPositionServer) error {
	for _, member := range s.store.MembersWithPosition(positionFromProto(req)) {
		if err := stream.Send(memberToProto(member)); err != nil {
			return err
		}
	}
	return nil
}

// EstimatePositionsByPersons classifies each inbound person into one of
// four counters and answers with a single tally once the inbound stream
// completes. If the stream ends with an error instead, the partial tally is
// discarded and nothing is emitted.
func (s *TeamService) EstimatePositionsByPersons(stream teamv1.TeamService_EstimatePositionsByPersonsServer) error {
	var tally positionTally
	for {
		person, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(tally.finalize())
		}
		if err != nil {
			tally.abort()
			s.log.Warn("position estimate cancelled before completion", "err", err)
			return err
		}
		pos, found := s.store.PositionOf(person.GetId())
		tally.observe(pos, found)
	}
}

// GetPersonsByTeam routes every inbound team to its persons, emitting them
// before the next inbound item is read. The outbound stream closes only
// after the inbound stream completes; an inbound error ends the call with
// no further output.
func (s *TeamService) GetPersonsByTeam(stream teamv1.TeamService_GetPersonsByTeamServer) error {
	for {
		team, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.log.Warn("team routing cancelled", "err", err)
			return err
		}
		for _, person := range s.store.PersonsOfTeam(team.GetId()) {
			if err := stream.Send(personToProto(person)); err != nil {
				return err
			}
		}
	}
}

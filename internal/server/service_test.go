package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/grpc"

	"github.com/pdz-labs/team-roster/internal/roster"
	teamv1 "github.com/pdz-labs/team-roster/proto/teamv1"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService() *TeamService {
	store := roster.NewStore([]roster.Team{
		{
			ID:   1,
			Name: "convivencia",
			Members: []roster.Member{
				{Person: roster.Person{ID: 1, Name: "Rafinha"}, Position: roster.Position{ID: roster.CodeDeveloper, Name: "desenvolvedor"}},
				{Person: roster.Person{ID: 2, Name: "Bia"}, Position: roster.Position{ID: roster.CodeQualityAssurance, Name: "qa"}},
			},
		},
		{
			ID:   2,
			Name: "cross",
			Members: []roster.Member{
				{Person: roster.Person{ID: 10, Name: "Gersão"}, Position: roster.Position{ID: roster.CodeSiteReliabilityEngineer, Name: "sre"}},
				{Person: roster.Person{ID: 11, Name: "Tatá"}, Position: roster.Position{ID: roster.CodeDeveloper, Name: "desenvolvedor"}},
				{Person: roster.Person{ID: 12, Name: "Leo"}, Position: roster.Position{ID: roster.CodeTeamLeadZ, Name: "tl-z"}},
			},
		},
	})
	return NewTeamService(store, discardLogger())
}

func TestSayHelloCombinesPersonAndPosition(t *testing.T) {
	svc := testService()
	resp, err := svc.SayHello(context.Background(), &teamv1.Member{
		Person:   &teamv1.Person{Id: 1, Name: "Rafinha"},
		Position: &teamv1.Position{Id: 1, Name: "desenvolvedor"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.GetMessage(), "Rafinha") || !strings.Contains(resp.GetMessage(), "desenvolvedor") {
		t.Fatalf("greeting must mention person and position, got %q", resp.GetMessage())
	}
}

func TestGetTeamByPersonFound(t *testing.T) {
	svc := testService()
	team, err := svc.GetTeamByPerson(context.Background(), &teamv1.Person{Id: 11, Name: "Tatá"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.GetId() != 2 || team.GetName() != "cross" {
		t.Fatalf("expected team cross/2, got %q/%d", team.GetName(), team.GetId())
	}
	if len(team.GetMember()) != 3 {
		t.Fatalf("expected 3 members, got %d", len(team.GetMember()))
	}
}

func TestGetTeamByPersonUnmatchedIsEmptyNotError(t *testing.T) {
	svc := testService()
	team, err := svc.GetTeamByPerson(context.Background(), &teamv1.Person{Id: 999})
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if team == nil || team.GetId() != 0 || team.GetName() != "" {
		t.Fatalf("expected well-formed empty team, got %+v", team)
	}
}

type fakeMembersStream struct {
	grpc.ServerStream
	sent    []*teamv1.Member
	sendErr error
}

func (s *fakeMembersStream) Send(m *teamv1.Member) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, m)
	return nil
}

func TestGetMembersByPositionStreamsEveryMatch(t *testing.T) {
	svc := testService()
	stream := &fakeMembersStream{}
	err := svc.GetMembersByPosition(&teamv1.Position{Id: 1, Name: "desenvolvedor"}, stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("expected 2 developers, got %d", len(stream.sent))
	}
	if stream.sent[0].GetPerson().GetId() != 1 || stream.sent[1].GetPerson().GetId() != 11 {
		t.Fatalf("expected team-then-member order [1 11], got [%d %d]",
			stream.sent[0].GetPerson().GetId(), stream.sent[1].GetPerson().GetId())
	}
}

func TestGetMembersByPositionZeroMatchesCompletesCleanly(t *testing.T) {
	svc := testService()
	stream := &fakeMembersStream{}
	if err := svc.GetMembersByPosition(&teamv1.Position{Id: 3, Name: "tl-i"}, stream); err != nil {
		t.Fatalf("zero matches must not be an error, got %v", err)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("expected empty stream, got %d items", len(stream.sent))
	}
}

func TestGetMembersByPositionStopsOnSendFailure(t *testing.T) {
	svc := testService()
	stream := &fakeMembersStream{sendErr: errors.New("consumer gone")}
	if err := svc.GetMembersByPosition(&teamv1.Position{Id: 1, Name: "desenvolvedor"}, stream); err == nil {
		t.Fatalf("expected send failure to surface")
	}
}

type fakeEstimateStream struct {
	grpc.ServerStream
	inbound []*teamv1.Person
	recvErr error
	reply   *teamv1.EstimatePosition
	closed  bool
}

func (s *fakeEstimateStream) Recv() (*teamv1.Person, error) {
	if len(s.inbound) == 0 {
		if s.recvErr != nil {
			return nil, s.recvErr
		}
		return nil, io.EOF
	}
	next := s.inbound[0]
	s.inbound = s.inbound[1:]
	return next, nil
}

func (s *fakeEstimateStream) SendAndClose(r *teamv1.EstimatePosition) error {
	s.reply = r
	s.closed = true
	return nil
}

func TestEstimatePositionsTalliesEveryBucket(t *testing.T) {
	svc := testService()
	stream := &fakeEstimateStream{inbound: []*teamv1.Person{
		{Id: 1},   // developer
		{Id: 11},  // developer
		{Id: 10},  // sre
		{Id: 2},   // qa
		{Id: 12},  // team lead
		{Id: 404}, // not in roster: falls into the team-lead bucket
	}}

	if err := svc.EstimatePositionsByPersons(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stream.closed || stream.reply == nil {
		t.Fatalf("expected exactly one tally reply")
	}
	r := stream.reply
	if r.GetDevCounter() != 2 || r.GetSreCounter() != 1 || r.GetQaCounter() != 1 || r.GetTlCounter() != 2 {
		t.Fatalf("unexpected tally: dev=%d sre=%d qa=%d tl=%d",
			r.GetDevCounter(), r.GetSreCounter(), r.GetQaCounter(), r.GetTlCounter())
	}
	sum := r.GetDevCounter() + r.GetSreCounter() + r.GetQaCounter() + r.GetTlCounter()
	if sum != 6 {
		t.Fatalf("counters must sum to the inbound count, got %d", sum)
	}
}

func TestEstimatePositionsEmptyStreamYieldsZeroTally(t *testing.T) {
	svc := testService()
	stream := &fakeEstimateStream{}
	if err := svc.EstimatePositionsByPersons(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := stream.reply
	if r == nil || r.GetDevCounter()+r.GetSreCounter()+r.GetQaCounter()+r.GetTlCounter() != 0 {
		t.Fatalf("expected all-zero tally, got %+v", r)
	}
}

func TestEstimatePositionsAbortSuppressesTally(t *testing.T) {
	svc := testService()
	stream := &fakeEstimateStream{
		inbound: []*teamv1.Person{{Id: 1}, {Id: 2}},
		recvErr: errors.New("client cancelled"),
	}
	if err := svc.EstimatePositionsByPersons(stream); err == nil {
		t.Fatalf("expected the inbound error to surface")
	}
	if stream.closed || stream.reply != nil {
		t.Fatalf("a partial tally must never be emitted, got %+v", stream.reply)
	}
}

type fakeRouteStream struct {
	grpc.ServerStream
	inbound []*teamv1.Team
	recvErr error
	events  []string
	sent    []*teamv1.Person
}

func (s *fakeRouteStream) Recv() (*teamv1.Team, error) {
	if len(s.inbound) == 0 {
		if s.recvErr != nil {
			s.events = append(s.events, "recv:error")
			return nil, s.recvErr
		}
		s.events = append(s.events, "recv:eof")
		return nil, io.EOF
	}
	next := s.inbound[0]
	s.inbound = s.inbound[1:]
	s.events = append(s.events, fmt.Sprintf("recv:%d", next.GetId()))
	return next, nil
}

func (s *fakeRouteStream) Send(p *teamv1.Person) error {
	s.events = append(s.events, fmt.Sprintf("send:%d", p.GetId()))
	s.sent = append(s.sent, p)
	return nil
}

func TestGetPersonsByTeamInterleavesOutputWithInput(t *testing.T) {
	svc := testService()
	stream := &fakeRouteStream{inbound: []*teamv1.Team{{Id: 1}, {Id: 2}}}

	if err := svc.GetPersonsByTeam(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"recv:1", "send:1", "send:2",
		"recv:2", "send:10", "send:11", "send:12",
		"recv:eof",
	}
	if len(stream.events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(stream.events), stream.events)
	}
	for i := range want {
		if stream.events[i] != want[i] {
			t.Fatalf("event %d: expected %q, got %q (full: %v)", i, want[i], stream.events[i], stream.events)
		}
	}
}

func TestGetPersonsByTeamUnknownTeamEmitsNothingForIt(t *testing.T) {
	svc := testService()
	stream := &fakeRouteStream{inbound: []*teamv1.Team{{Id: 9}, {Id: 1}}}
	if err := svc.GetPersonsByTeam(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("expected only team 1 persons, got %d", len(stream.sent))
	}
}

func TestGetPersonsByTeamInboundErrorStopsOutput(t *testing.T) {
	svc := testService()
	stream := &fakeRouteStream{
		inbound: []*teamv1.Team{{Id: 1}},
		recvErr: errors.New("client went away"),
	}
	if err := svc.GetPersonsByTeam(stream); err == nil {
		t.Fatalf("expected the inbound error to surface")
	}
	last := stream.events[len(stream.events)-1]
	if last != "recv:error" {
		t.Fatalf("no output may follow an inbound error, last event: %q", last)
	}
}

package services

import (
	"context"
	"testing"

	"rehab-app/internal/database"
	"rehab-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgramDB struct {
	database.Database
	programs map[int]*models.Program
	users    map[int]*models.User
	saved    map[int][]string
}

func newFakeProgramDB() *fakeProgramDB {
	return &fakeProgramDB{
		programs: make(map[int]*models.Program),
		users:    make(map[int]*models.User),
		saved:    make(map[int][]string),
	}
}

func (f *fakeProgramDB) GetProgramByID(ctx context.Context, id int) (*models.Program, error) {
	p, ok := f.programs[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *p
	copied.Participants = append([]string(nil), p.Participants...)
	return &copied, nil
}

func (f *fakeProgramDB) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeProgramDB) SetProgramParticipants(ctx context.Context, id int, participants []string) error {
	f.saved[id] = participants
	f.programs[id].Participants = participants
	return nil
}

func TestAddParticipant(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1, Name: "Recovery basics", Participants: []string{"5"}}
	db.users[7] = &models.User{ID: 7, Name: "Greg"}

	svc := NewProgramService(db)
	err := svc.AddParticipant(context.Background(), &models.ProgramMemberRequest{ProgramID: 1, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "7"}, db.saved[1])
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1, Participants: []string{"7"}}
	db.users[7] = &models.User{ID: 7}

	svc := NewProgramService(db)
	err := svc.AddParticipant(context.Background(), &models.ProgramMemberRequest{ProgramID: 1, UserID: 7})
	assert.Error(t, err)
	assert.Empty(t, db.saved)
}

func TestAddParticipantUnknownUser(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1}

	svc := NewProgramService(db)
	err := svc.AddParticipant(context.Background(), &models.ProgramMemberRequest{ProgramID: 1, UserID: 99})
	assert.Error(t, err)
}

func TestRemoveParticipant(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1, Participants: []string{"5", "7", "9"}}

	svc := NewProgramService(db)
	err := svc.RemoveParticipant(context.Background(), &models.ProgramMemberRequest{ProgramID: 1, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "9"}, db.saved[1])
}

func TestRemoveParticipantNotOnProgram(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1, Participants: []string{"5"}}

	svc := NewProgramService(db)
	err := svc.RemoveParticipant(context.Background(), &models.ProgramMemberRequest{ProgramID: 1, UserID: 7})
	assert.Error(t, err)
}

func TestListProgramMembersSkipsMissingUsers(t *testing.T) {
	db := newFakeProgramDB()
	db.programs[1] = &models.Program{ID: 1, Participants: []string{"5", "deleted", "9"}}
	db.users[5] = &models.User{ID: 5, Name: "Maya"}
	db.users[9] = &models.User{ID: 9, Name: "Ivan"}

	svc := NewProgramService(db)
	members, err := svc.ListProgramMembers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.UserRef{{ID: 5, Name: "Maya"}, {ID: 9, Name: "Ivan"}}, members)
}

func TestCreateProgramValidation(t *testing.T) {
	svc := NewProgramService(newFakeProgramDB())

	_, err := svc.CreateProgram(context.Background(), &models.CreateProgramRequest{})
	assert.Error(t, err)

	_, err = svc.CreateProgram(context.Background(), &models.CreateProgramRequest{Name: "x", Progress: 120})
	assert.Error(t, err)
}

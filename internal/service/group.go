package service

import (
	"errors"

	"studjournal/internal/domain"
	"studjournal/internal/repository"
)

// ErrNotCaptain means a non-captain tried to edit the shared group record
var ErrNotCaptain = errors.New("only the group captain can do that")

// GroupService handles the shared per-chat group record
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Open returns the chat's group record, creating one with the opener as
// captain on first use
func (s *GroupService) Open(chatID, openerID int64) (*domain.StudyGroup, error) {
	group, err := s.groupRepo.GetGroup(chatID)
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}

	created := domain.StudyGroup{ChatID: chatID, Captain: openerID}
	if err := s.groupRepo.UpsertGroup(created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetCaptain hands the group over to another user. Captain-only.
func (s *GroupService) SetCaptain(chatID, callerID, newCaptain int64) error {
	group, err := s.ownedGroup(chatID, callerID)
	if err != nil {
		return err
	}
	group.Captain = newCaptain
	return s.groupRepo.UpsertGroup(*group)
}

// SetDeputies replaces the deputy list. Captain-only.
func (s *GroupService) SetDeputies(chatID, callerID int64, deputies []int64) error {
	group, err := s.ownedGroup(chatID, callerID)
	if err != nil {
		return err
	}
	group.Deputies = domain.JoinIDs(deputies)
	return s.groupRepo.UpsertGroup(*group)
}

// SetMembers replaces the member list. Captain-only.
func (s *GroupService) SetMembers(chatID, callerID int64, members []int64) error {
	group, err := s.ownedGroup(chatID, callerID)
	if err != nil {
		return err
	}
	group.Members = domain.JoinIDs(members)
	return s.groupRepo.UpsertGroup(*group)
}

func (s *GroupService) ownedGroup(chatID, callerID int64) (*domain.StudyGroup, error) {
	group, err := s.Open(chatID, callerID)
	if err != nil {
		return nil, err
	}
	if !group.IsCaptain(callerID) {
		return nil, ErrNotCaptain
	}
	return group, nil
}

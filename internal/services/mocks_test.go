package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mrlokans/wordbook/internal/entities"
)

// MockWordStore is a mock for WordStore
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) AddWord(userID uint, word, meaning string) (uint, error) {
	args := m.Called(userID, word, meaning)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockWordStore) ListWords(userID uint) ([]entities.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Word), args.Error(1)
}

func (m *MockWordStore) SearchWords(userID uint, query string) ([]entities.Word, error) {
	args := m.Called(userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Word), args.Error(1)
}

func (m *MockWordStore) ListWordsPage(userID uint, page, pageSize int) ([]entities.Word, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entities.Word), args.Get(1).(int64), args.Error(2)
}

func (m *MockWordStore) DeleteWord(userID uint, word string) (int64, error) {
	args := m.Called(userID, word)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordStore) GetMeaning(userID, wordID uint) (string, error) {
	args := m.Called(userID, wordID)
	return args.String(0), args.Error(1)
}

func (m *MockWordStore) CountWords(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEnricher is a mock for Enricher
type MockEnricher struct {
	mock.Mock
}

func (m *MockEnricher) Enrich(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

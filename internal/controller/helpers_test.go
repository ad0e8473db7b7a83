package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/domain/mocks"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func newMockRepo(t *testing.T) *mocks.MockTitleRepository {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mocks.NewMockTitleRepository(ctrl)
}

func movie(id int, title string) domain.Title {
	return domain.Title{ID: id, Title: title, Kind: domain.MediaKindMovie}
}

func show(id int, name string) domain.Title {
	return domain.Title{ID: id, Name: name, Kind: domain.MediaKindTV}
}

// eventually waits until cond holds for the value returned by get.
func eventually[T any](t *testing.T, get func() T, cond func(T) bool) T {
	t.Helper()
	var last T
	require.Eventually(t, func() bool {
		last = get()
		return cond(last)
	}, waitFor, tick)
	return last
}

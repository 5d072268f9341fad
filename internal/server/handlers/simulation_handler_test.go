package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/lactation"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/repository/breeds"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/simulation"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("simulate boer: %w", breeds.ErrBreedNotFound), http.StatusNotFound},
		{simulation.ErrNoBreeds, http.StatusNotFound},
		{fmt.Errorf("%w: %q", models.ErrUnknownManagementLevel, "x"), http.StatusBadRequest},
		{simulation.ErrInvalidComparison, http.StatusBadRequest},
		{simulation.ErrExportUnavailable, http.StatusBadRequest},
		{fmt.Errorf("%w: peak_day=0", lactation.ErrInvalidBreedProfile), http.StatusUnprocessableEntity},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

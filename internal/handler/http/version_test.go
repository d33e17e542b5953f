package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "v1.2.3-beta+build.42", ""} {
		t.Run(version, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version)

			rec := serve(h, http.MethodGet, "/version", "", nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

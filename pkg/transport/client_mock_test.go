package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/artfetch/pkg/transport"
	mock_auth "github.com/glorpus-work/artfetch/pkg/auth/mocks"
	mock_transport "github.com/glorpus-work/artfetch/pkg/transport/mocks"
)

func TestDoConsultsResolverAndAuthenticator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	resolver := mock_transport.NewMockProxyResolver(ctrl)
	resolver.EXPECT().ProxyFor(serverURL.Hostname()).Return(nil)

	authenticator := mock_auth.NewMockAuthenticator(ctrl)
	authenticator.EXPECT().Apply(gomock.Any()).Return(nil)

	client := transport.NewClient(5*time.Second,
		transport.WithProxyResolver(resolver),
		transport.WithAuth(authenticator),
	)

	resp, err := client.Do(context.Background(), transport.Request{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, client.Proxy())
}

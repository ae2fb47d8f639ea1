package ibge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, server.Client())
	require.NoError(t, err)
	return client
}

func TestClient_ValidCity(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/localidades/municipios/3145604", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3145604,"nome":"Oliveira","microrregiao":{"mesorregiao":{"UF":{"sigla":"MG"}}}}`))
	})

	valid, err := client.ValidCity(context.Background(), "oliveira", 3145604)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = client.ValidCity(context.Background(), "Outra Cidade", 3145604)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestClient_ValidCity_UnknownCode(t *testing.T) {
	empty := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	valid, err := empty.ValidCity(context.Background(), "Oliveira", 99999)
	require.NoError(t, err)
	require.False(t, valid)

	notFound := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	valid, err = notFound.ValidCity(context.Background(), "Oliveira", 99999)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestClient_ValidCity_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := client.ValidCity(context.Background(), "Oliveira", 3145604)
	require.Error(t, err)
}

func TestClient_StateMunicipalities(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/localidades/estados/MG/municipios", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":3106200,"nome":"Belo Horizonte","microrregiao":{"mesorregiao":{"UF":{"sigla":"MG"}}}},
			{"id":3145604,"nome":"Oliveira","microrregiao":{"mesorregiao":{"UF":{"sigla":"MG"}}}}
		]`))
	})

	municipalities, err := client.StateMunicipalities(context.Background(), "mg")
	require.NoError(t, err)
	require.Len(t, municipalities, 2)
	require.Equal(t, 3106200, municipalities[0].IBGECode)
	require.Equal(t, "Belo Horizonte", municipalities[0].Name)
	require.Equal(t, "MG", municipalities[0].State)
}

func TestClient_StateMunicipalities_BadState(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.StateMunicipalities(context.Background(), "Minas")
	require.Error(t, err)
}

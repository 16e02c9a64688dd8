package tlsutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/tlsutil"
)

func TestGenerateDevCertificates(t *testing.T) {
	paths, err := tlsutil.GenerateDevCertificates([]string{"localhost", "127.0.0.1"}, t.TempDir())
	require.NoError(t, err)

	server, err := tlsutil.ServerTLSConfig(paths.ServerPEM, paths.ServerKey)
	require.NoError(t, err)
	assert.Equal(t, "tls", server.Info().SecurityProtocol)

	_, err = tlsutil.ClientTLSConfig(paths.CA)
	require.NoError(t, err)
}

func TestServerTLSConfig_MissingFiles(t *testing.T) {
	_, err := tlsutil.ServerTLSConfig("nope.pem", "nope-key.pem")
	assert.ErrorContains(t, err, "load server key pair")

	_, err = tlsutil.ClientTLSConfig("nope.pem")
	assert.ErrorContains(t, err, "read CA file")
}

package plugin

import (
	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
)

// Serve runs impl as a plugin until the host disconnects.
func Serve(impl RevisionDater, logger hclog.Logger) {
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			PluginName: &RevisionDatePlugin{Impl: impl},
		},
		Logger: logger,
	})
}

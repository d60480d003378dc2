package plugin

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
)

// LoadedPlugin is a running plugin process.
type LoadedPlugin struct {
	// Dater forwards calls to the plugin process.
	Dater RevisionDater
	// Client is the go-plugin client for managing the plugin process.
	Client *goplugin.Client
}

// Close terminates the plugin process.
func (p *LoadedPlugin) Close() {
	if p.Client != nil {
		p.Client.Kill()
	}
}

// Loader starts gitrevdate plugin processes for a host.
type Loader struct {
	logger hclog.Logger
}

// NewLoader creates a new plugin loader.
func NewLoader() *Loader {
	return &Loader{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "gitrevdate-plugin-loader",
			Level:  hclog.Warn,
			Output: os.Stderr,
		}),
	}
}

// NewLoaderWithLogger creates a new plugin loader with a custom logger.
func NewLoaderWithLogger(logger hclog.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load starts the binary at path with args, normally "serve <docs_dir>",
// and dispenses its RevisionDater.
func (l *Loader) Load(path string, args ...string) (*LoadedPlugin, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("plugin binary not found: %s", path)
	}

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap,
		Cmd:             exec.Command(path, args...),
		Logger:          l.logger,
		AllowedProtocols: []goplugin.Protocol{
			goplugin.ProtocolNetRPC,
		},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to connect to plugin %s: %w", path, err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin %s: %w", path, err)
	}

	dater, ok := raw.(RevisionDater)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s does not implement RevisionDater", path)
	}

	return &LoadedPlugin{
		Dater:  dater,
		Client: client,
	}, nil
}

package di

import (
	"github.com/samber/do/v2"
	"github.com/samber/mo"

	"github.com/omarluq/dsgen/internal/config"
	"github.com/omarluq/dsgen/internal/emitter"
)

// EmitterService emits the document described by the current configuration.
type EmitterService struct {
	config *ConfigService
	logger *LoggerService
}

// NewEmitter creates the emitter service.
func NewEmitter(i do.Injector) (*EmitterService, error) {
	return &EmitterService{
		config: do.MustInvoke[*ConfigService](i),
		logger: do.MustInvoke[*LoggerService](i),
	}, nil
}

// Emitter returns an emitter configured from cfg.
func (s *EmitterService) Emitter(cfg *config.Config) *emitter.Emitter {
	var opts []emitter.Option
	if cfg.Dataset.Strict {
		opts = append(opts, emitter.WithStrictClassNames())
	}
	return emitter.New(*s.logger.Logger, opts...)
}

// Emit writes the document for the current configuration.
func (s *EmitterService) Emit() mo.Result[emitter.Emission] {
	return s.EmitConfig(s.config.Get())
}

// EmitConfig writes the document described by cfg.
func (s *EmitterService) EmitConfig(cfg *config.Config) mo.Result[emitter.Emission] {
	return s.Emitter(cfg).Emit(cfg.Dataset.Request())
}

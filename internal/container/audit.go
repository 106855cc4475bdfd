package container

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/samber/do"
	"github.com/serroba/urlregistry/internal/audit"
	"github.com/serroba/urlregistry/internal/audit/sink"
	"github.com/serroba/urlregistry/internal/messaging"
	"go.uber.org/zap"
)

// AuditPackage provides the consumer group writing registration events to
// the log and, when Options.AuditFile is set, to a JSON lines file.
func AuditPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*sink.File, error) {
		options := do.MustInvoke[*Options](i)

		return sink.NewFile(options.AuditFile)
	})

	do.Provide(i, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		sinks := audit.MultiSink{sink.NewLog(logger)}
		if options.AuditFile != "" {
			sinks = append(sinks, do.MustInvoke[*sink.File](i))
		}

		group, err := messaging.NewConsumerGroup(do.MustInvoke[message.Subscriber](i), logger)
		if err != nil {
			return nil, err
		}

		audit.Subscribe(group, sinks)

		return group, nil
	})
}

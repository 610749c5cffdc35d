package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/seabird-chat/seabird-go"
	"github.com/seabird-chat/seabird-go/pb"
	"golang.org/x/sync/errgroup"

	ordinal "github.com/seabird-chat/seabird-ordinal-plugin"
)

var (
	ErrEmptyArgument  = errors.New("missing integer argument")
	ErrInvalidInteger = errors.New("not a base 10 integer")
)

const usage = "Usage: ordinal <integer>"

type Config struct {
	SeabirdHost  string
	SeabirdToken string
}

type Plugin struct {
	logger   *slog.Logger
	config   Config
	sbClient *seabird.Client
}

func NewPlugin(logger *slog.Logger, config Config) (*Plugin, error) {
	sbClient, err := seabird.NewClient(config.SeabirdHost, config.SeabirdToken)
	if err != nil {
		return nil, err
	}

	return &Plugin{
		logger:   logger,
		config:   config,
		sbClient: sbClient,
	}, nil
}

// Render turns a command argument into the reply text. Integers outside the
// int64 range are handled with math/big.
func Render(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", ErrEmptyArgument
	}

	n, err := strconv.ParseInt(arg, 10, 64)
	if err == nil {
		return ordinal.Format(n), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return "", fmt.Errorf("%w: %q", ErrInvalidInteger, arg)
	}

	x, ok := new(big.Int).SetString(arg, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidInteger, arg)
	}

	return ordinal.OfBig(x).String(), nil
}

func (p *Plugin) runSeabirdStream(ctx context.Context, group *errgroup.Group) error {
	events, err := p.sbClient.StreamEvents(map[string]*pb.CommandMetadata{
		"ordinal": {
			Name:      "ordinal",
			ShortHelp: "<integer>",
			FullHelp:  "Render an integer as an ordinal number, like 21st",
		},
		"nth": {
			Name:      "nth",
			ShortHelp: "<integer>",
			FullHelp:  "Alias for ordinal",
		},
	})
	if err != nil {
		return err
	}
	defer events.Close()

	p.logger.Info("Listening for commands")

	for {
		select {
		case event, ok := <-events.C:
			if !ok {
				return errors.New("event stream unexpectedly closed")
			}

			switch v := event.GetInner().(type) {
			case *pb.Event_Command:
				switch v.Command.GetCommand() {
				case "ordinal", "ord", "nth":
					group.Go(func() error {
						p.handleOrdinal(v.Command)
						return nil
					})
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Plugin) handleOrdinal(event *pb.CommandEvent) {
	logger := p.logger.With(slog.String("arg", event.Arg))

	reply, err := Render(event.Arg)
	if err != nil {
		logger.With(slog.Any("error", err)).Warn("Rejected ordinal command")
		if err := p.sbClient.MentionReply(event.Source, usage); err != nil {
			logger.With(slog.Any("error", err)).Error("Failed to send usage reply")
		}
		return
	}

	if err := p.sbClient.Reply(event.Source, reply); err != nil {
		logger.With(slog.Any("error", err)).Error("Failed to send ordinal reply")
		return
	}

	logger.With(slog.String("reply", reply)).Debug("Sent ordinal reply")
}

// Run blocks until the event stream closes or ctx is cancelled. In-flight
// replies are allowed to finish before it returns.
func (p *Plugin) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return p.runSeabirdStream(ctx, group)
	})

	return group.Wait()
}

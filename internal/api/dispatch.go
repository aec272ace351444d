package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand reports a command name Invoke does not serve.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArguments reports a command argument object that does not decode.
	ErrInvalidArguments = errors.New("invalid command arguments")
)

// Invoke runs the named command. args is the command's JSON argument object;
// it may be empty for commands without arguments.
func (s *Service) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case CommandPickFiles:
		return s.PickFiles(ctx)
	case CommandPickFolder:
		return s.PickFolder(ctx)
	case CommandPickOutput:
		return s.PickOutput(ctx)
	case CommandOpenOutput:
		var req OpenOutputRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		return nil, s.OpenOutput(ctx, req.Path)
	case CommandOpenSettingsWindow:
		return nil, s.OpenSettingsWindow(ctx)
	case CommandPickFFmpeg:
		return s.PickFFmpeg(ctx)
	case CommandCheckFFmpeg:
		return s.CheckFFmpeg(ctx)
	case CommandStartConversion:
		var req StartConversionRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		return nil, s.StartConversion(ctx, req)
	case CommandStopConversion:
		return nil, s.StopConversion(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func decodeArgs(args json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

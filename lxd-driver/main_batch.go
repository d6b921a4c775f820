package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/backoff"
	"github.com/Rican7/retry/strategy"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/canonical/lxd-driver/client"
	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/logger"
	"github.com/canonical/lxd-driver/shared/resource"
	"github.com/canonical/lxd-driver/shared/subprocess"
)

type cmdBatch struct {
	global *cmdGlobal

	flagParallel int
	flagRetries  uint
	flagBackoff  time.Duration
}

func (c *cmdBatch) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "batch <file>"
	cmd.Short = "Run a list of operations"
	cmd.Long = cli.FormatSection("Description", `Run a list of operations

The file is a YAML list of operations, each with a kind, an action, its
parameters and an optional lock. Operations run concurrently. Locked operations
acting on the same resource run one at a time. Use "-" to read from stdin.

Timed out operations and binaries that failed to start are retried.`)
	cmd.Example = cli.FormatSection("", `- kind: container
  action: launch
  params:
    image: ubuntu/24.04
    instance: c1
- kind: container
  action: stop
  params:
    instance: c2
    force: true
  lock: true`)
	cmd.RunE = c.run

	cmd.Flags().IntVarP(&c.flagParallel, "parallel", "P", 0, "Number of operations run at once, defaults to the configuration"+"``")
	cmd.Flags().UintVar(&c.flagRetries, "retries", 2, "Number of retries of a retryable failure"+"``")
	cmd.Flags().DurationVar(&c.flagBackoff, "backoff", time.Second, "Delay before the first retry, doubled on every retry"+"``")

	return cmd
}

func (c *cmdBatch) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}

		defer func() { _ = f.Close() }()
		r = f
	}

	reqs, err := parseBatch(r, c.global.client.Registry())
	if err != nil {
		return err
	}

	parallel := c.flagParallel
	if parallel <= 0 {
		parallel = c.global.conf.Workers()
	}

	if c.global.flagDryRun {
		for _, req := range reqs {
			spec, err := c.global.client.Build(req.Kind, req.Action, req.Params)
			if err != nil {
				return err
			}

			fmt.Println(spec.String())
		}

		return nil
	}

	results := c.global.client.RunBatchFunc(cmd.Context(), reqs, parallel, c.retrying(c.global.client))

	failed := 0
	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%d: %s %s: %v\n", i, result.Request.Kind, result.Request.Action, result.Err)
			continue
		}

		fmt.Printf("%d: %s %s: %s\n", i, result.Request.Kind, result.Request.Action, result.Result.Spec.String())
	}

	// Keep the remotes of the configuration in line with lxc.
	if remotesChanged(results) {
		err = c.global.saveConfig()
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(results))
	}

	return nil
}

// retrying runs a request, retrying timeouts and spawn failures with an exponential backoff.
func (c *cmdBatch) retrying(cl *client.Client) client.RunFunc {
	return func(ctx context.Context, req client.Request) (*client.Result, error) {
		var res *client.Result
		var lastErr error

		retryable := func(attempt uint) bool {
			return attempt == 0 || (ctx.Err() == nil && subprocess.Retryable(lastErr))
		}

		err := retry.Retry(func(attempt uint) error {
			if attempt > 0 {
				logger.Warn("Retrying operation", logger.Ctx{"kind": req.Kind, "action": req.Action, "attempt": attempt, "err": lastErr})
			}

			res, lastErr = cl.Run(ctx, req.Kind, req.Action, req.Params)
			return lastErr
		}, retryable, strategy.Limit(c.flagRetries+1), strategy.Backoff(backoff.BinaryExponential(c.flagBackoff)))
		if err != nil {
			return nil, err
		}

		return res, nil
	}
}

// parseBatch decodes a YAML list of requests. Values are weakly typed so that "true" and 1 both work for switches.
func parseBatch(r io.Reader, registry *command.Registry) ([]client.Request, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	err = yaml.Unmarshal(content, &raw)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse the batch file: %w", err)
	}

	reqs := make([]client.Request, 0, len(raw))
	for i, item := range raw {
		var req client.Request

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			Result:           &req,
		})
		if err != nil {
			return nil, fmt.Errorf("Error creating decoder: %w", err)
		}

		err = decoder.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("Invalid operation %d: %w", i, err)
		}

		err = normalizeRequest(registry, &req)
		if err != nil {
			return nil, fmt.Errorf("Invalid operation %d: %w", i, err)
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// normalizeRequest validates the kind and action against registry, and converts switch values to booleans.
func normalizeRequest(registry *command.Registry, req *client.Request) error {
	_, err := resource.ParseKind(string(req.Kind))
	if err != nil {
		return err
	}

	_, err = resource.ParseAction(string(req.Action))
	if err != nil {
		return err
	}

	entry, ok := registry.Lookup(req.Kind, req.Action)
	if !ok {
		return fmt.Errorf("%w: %s %s", command.ErrUnsupportedAction, req.Kind, req.Action)
	}

	for key, value := range req.Params {
		p, ok := entry.Param(key)
		if !ok {
			continue
		}

		if p.Type == command.ParamSwitch {
			var enabled bool

			err := mapstructure.WeakDecode(value, &enabled)
			if err != nil {
				return fmt.Errorf("Invalid value for switch %q: %w", key, err)
			}

			req.Params[key] = enabled
			continue
		}

		// Numbers and booleans are accepted for string parameters, e.g. a "limits.cpu" value of 2.
		_, isString := value.(string)
		if !isString && value != nil && !p.Type.IsAddress() && p.Type != command.ParamScope {
			var s string

			err := mapstructure.WeakDecode(value, &s)
			if err != nil {
				return fmt.Errorf("Invalid value for %q: %w", key, err)
			}

			req.Params[key] = s
		}
	}

	return nil
}

// remotesChanged returns true when a successful request of the batch added, removed, renamed or switched a remote.
func remotesChanged(results []client.BatchResult) bool {
	for _, result := range results {
		if result.Err == nil && changesRemotes(result.Request.Kind, result.Request.Action) {
			return true
		}
	}

	return false
}

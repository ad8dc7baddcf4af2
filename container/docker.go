// Copyright © 2019 Genome Research Limited
// Author: Sendu Bala <sb10@sanger.ac.uk>.
//
//  This file is part of ssub.
//
//  ssub is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ssub is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with ssub. If not, see <http://www.gnu.org/licenses/>.

package container

// this file has the docker implementation of Runner

import (
	"context"
	"io"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	docker "github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/inconshreveable/log15"
	"github.com/jpillora/backoff"
)

const (
	pingAttempts = 4
	pullAttempts = 3
)

// Docker is a Runner that runs containers via the local docker daemon. You
// must use the NewDocker() method to make one, or the methods won't work.
type Docker struct {
	client *docker.Client
	logger log15.Logger
}

// NewDocker creates a new Docker, connecting to the daemon using the standard
// environment variables to define options. The daemon is pinged, with some
// backing-off retries since it may still be coming up, and we fail if it
// remains unreachable.
func NewDocker(logger log15.Logger) (*Docker, error) {
	client, err := docker.NewClientWithOpts(docker.FromEnv, docker.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}

	d := &Docker{
		client: client,
		logger: logger.New("pkg", "container"),
	}

	b := &backoff.Backoff{Min: 250 * time.Millisecond, Max: 5 * time.Second, Factor: 2}
	for attempt := 1; ; attempt++ {
		_, err = client.Ping(context.Background())
		if err == nil {
			break
		}
		if attempt == pingAttempts {
			return nil, err
		}
		d.logger.Debug("docker daemon ping failed, will retry", "attempt", attempt, "err", err)
		time.Sleep(b.Duration())
	}

	return d, nil
}

// Run pulls the given image if necessary, then creates, starts and waits on a
// container running it with the given arguments. The container's output is
// passed to opts.Log, if set. The container is removed once it has exited,
// and an *ExitError is returned if it exited non-zero.
func (d *Docker) Run(ctx context.Context, img string, args []string, opts *RunOpts) error {
	if opts == nil {
		opts = &RunOpts{}
	}

	if err := d.pull(ctx, img); err != nil {
		return err
	}

	config, hostConfig, err := opts.configs(img, args)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		u, erru := uuid.NewV4()
		if erru != nil {
			return erru
		}
		name = "ssub-" + u.String()
	}

	resp, err := d.client.ContainerCreate(ctx, config, hostConfig, nil, nil, name)
	if err != nil {
		return err
	}
	d.logger.Debug("container created", "image", img, "name", name, "id", resp.ID)

	err = d.runToCompletion(ctx, resp.ID, img, opts.Log)

	// remove the container even on failure, so reruns don't collide on name
	errr := d.client.ContainerRemove(context.Background(), resp.ID, container.RemoveOptions{Force: true})
	if errr != nil {
		err = multierror.Append(err, errr).ErrorOrNil()
	}

	return err
}

// pull pulls the given image, retrying transient failures with backoff since
// registries do sometimes have moments.
func (d *Docker) pull(ctx context.Context, img string) error {
	b := &backoff.Backoff{Min: time.Second, Max: 30 * time.Second, Factor: 2}
	for attempt := 1; ; attempt++ {
		var err error
		var rc io.ReadCloser
		rc, err = d.client.ImagePull(ctx, img, image.PullOptions{})
		if err == nil {
			// the pull only completes once the response has been read through
			_, err = io.Copy(io.Discard, rc)
			errc := rc.Close()
			if err == nil {
				err = errc
			}
			if err == nil {
				return nil
			}
		}
		if attempt == pullAttempts {
			return err
		}
		d.logger.Debug("image pull failed, will retry", "image", img, "attempt", attempt, "err", err)
		time.Sleep(b.Duration())
	}
}

// runToCompletion attaches to the created container's output if a job log
// was supplied, then starts the container and waits for it to exit. We
// attach rather than read logs afterwards because attaching works even when
// the log driver is disabled, and it has to happen before the start or we'd
// miss early output.
func (d *Docker) runToCompletion(ctx context.Context, id, img string, log Logger) error {
	logsDone := make(chan struct{})
	closeAttach := func() {}
	if log == nil {
		close(logsDone)
	} else {
		resp, err := d.client.ContainerAttach(ctx, id, container.AttachOptions{
			Stream: true,
			Stdout: true,
			Stderr: true,
		})
		if err != nil {
			d.logger.Warn("could not attach to container", "id", id, "err", err)
			close(logsDone)
		} else {
			closeAttach = resp.Close
			go func() {
				defer close(logsDone)
				lw := &lineWriter{log: log}
				if _, errc := stdcopy.StdCopy(lw, lw, resp.Reader); errc != nil {
					d.logger.Debug("container output stream ended", "id", id, "err", errc)
				}
				lw.flush()
			}()
		}
	}

	if err := d.client.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		closeAttach()
		<-logsDone
		return err
	}

	waitCh, errCh := d.client.ContainerWait(ctx, id, container.WaitConditionNotRunning)
	select {
	case err := <-errCh:
		closeAttach()
		<-logsDone
		return err
	case status := <-waitCh:
		// the attach reader hits EOF once the container exits
		<-logsDone
		closeAttach()
		if status.StatusCode != 0 {
			return &ExitError{Image: img, Code: status.StatusCode}
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// ActorsList prints all actor profiles.
func (r *Runner) ActorsList(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	actors, err := r.client.Actors(ctx, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(actors, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Actors (%d)", len(actors)))
	for _, actor := range actors {
		line := fmt.Sprintf("%d. %s", actor.ID, actor.Name)
		if actor.Nationality != "" {
			line = fmt.Sprintf("%s (%s)", line, actor.Nationality)
		}
		r.writePlain("%s\n", line)
	}
	return nil
}

// ActorsGet prints a single actor profile.
func (r *Runner) ActorsGet(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	actorID := cmd.Int("id")

	actor, err := r.client.Actor(ctx, int64(actorID), sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(actor, cmd.Bool("pretty"))
	}

	r.writePlainHeader(actor.Name)
	if actor.Birthday != "" {
		r.writePlain("Birthday: %s\n", actor.Birthday)
	}
	if actor.Nationality != "" {
		r.writePlain("Nationality: %s\n", actor.Nationality)
	}
	if actor.PreviousWork != "" {
		r.writePlain("Previous work: %s\n", actor.PreviousWork)
	}
	if actor.Description != "" {
		r.writePlain("\n%s\n", actor.Description)
	}
	return nil
}

// ActorsCountries prints the distinct nationalities across all actors.
func (r *Runner) ActorsCountries(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	countries, err := r.client.ActorCountries(ctx, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(countries, cmd.Bool("pretty"))
	}

	return r.writePlain("%s\n", strings.Join(countries, "\n"))
}

// ActorsCreate adds an actor profile. Admin only.
func (r *Runner) ActorsCreate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	actor := models.Actor{
		Name:         cmd.String("name"),
		Description:  cmd.String("description"),
		PreviousWork: cmd.String("previous-work"),
		Birthday:     cmd.String("birthday"),
		Nationality:  cmd.String("nationality"),
	}
	if actor.Name == "" {
		return fmt.Errorf("%w: --name is required", shared.ErrMissingArgument)
	}

	created, err := r.client.CreateActor(ctx, actor, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Created actor %d: %s\n", created.ID, created.Name)
}

// ActorsUpdate edits an actor profile. Admin only.
func (r *Runner) ActorsUpdate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	actorID := cmd.Int("id")
	actor := models.Actor{
		Name:         cmd.String("name"),
		Description:  cmd.String("description"),
		PreviousWork: cmd.String("previous-work"),
		Birthday:     cmd.String("birthday"),
		Nationality:  cmd.String("nationality"),
	}

	updated, err := r.client.UpdateActor(ctx, int64(actorID), actor, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Updated actor %d: %s\n", updated.ID, updated.Name)
}

// ActorsDelete removes an actor profile. Admin only.
func (r *Runner) ActorsDelete(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	actorID := cmd.Int("id")

	if err := r.client.DeleteActor(ctx, int64(actorID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Deleted actor %d\n", actorID)
}

// ActorsAssign links an actor to a movie. Admin only.
func (r *Runner) ActorsAssign(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	movieID := cmd.Int("movie-id")
	actorID := cmd.Int("actor-id")

	if err := r.client.AssignActor(ctx, int64(movieID), int64(actorID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Assigned actor %d to movie %d\n", actorID, movieID)
}

// ActorsUnassign removes an actor from a movie's cast. Admin only.
func (r *Runner) ActorsUnassign(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	movieID := cmd.Int("movie-id")
	actorID := cmd.Int("actor-id")

	if err := r.client.UnassignActor(ctx, int64(movieID), int64(actorID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Removed actor %d from movie %d\n", actorID, movieID)
}

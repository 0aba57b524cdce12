// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "gender",
						Usage: "Profile gender code",
					},
					&cli.IntFlag{
						Name:  "occupation",
						Usage: "Profile occupation code",
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Profile age",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "End the backend session and clear stored credentials",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Revalidate the stored session and print the current identity",
				Flags:  jsonFlags(),
				Action: r.AuthWhoami,
			},
			{
				Name:   "status",
				Usage:  "Show local session state and backend address",
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles catalog browsing and admin catalog editing
func moviesCommand(r *Runner) *cli.Command {
	idFlag := &cli.IntFlag{
		Name:     "id",
		Usage:    "Movie ID",
		Required: true,
	}
	editFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "Movie title",
		},
		&cli.StringFlag{
			Name:  "genres",
			Usage: "Pipe-separated genres",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Plot description",
		},
		&cli.StringFlag{
			Name:  "image-url",
			Usage: "Poster image URL",
		},
	}

	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"movie", "m"},
		Usage:   "Browse and manage the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all movies",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read from the local cache instead of the backend",
					},
				}, jsonFlags()...),
				Action: r.MoviesList,
			},
			{
				Name:   "get",
				Usage:  "Show a movie with its reviews",
				Flags:  append([]cli.Flag{idFlag}, jsonFlags()...),
				Action: r.MoviesGet,
			},
			{
				Name:   "create",
				Usage:  "Add a movie to the catalog (admin)",
				Flags:  editFlags,
				Action: r.MoviesCreate,
			},
			{
				Name:   "update",
				Usage:  "Edit a movie (admin)",
				Flags:  append([]cli.Flag{idFlag}, editFlags...),
				Action: r.MoviesUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove a movie from the catalog (admin)",
				Flags:  []cli.Flag{idFlag},
				Action: r.MoviesDelete,
			},
		},
	}
}

// actorsCommand handles actor profiles and cast assignments
func actorsCommand(r *Runner) *cli.Command {
	idFlag := &cli.IntFlag{
		Name:     "id",
		Usage:    "Actor ID",
		Required: true,
	}
	editFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "Actor name",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Biography",
		},
		&cli.StringFlag{
			Name:  "previous-work",
			Usage: "Notable previous work",
		},
		&cli.StringFlag{
			Name:  "birthday",
			Usage: "Date of birth",
		},
		&cli.StringFlag{
			Name:  "nationality",
			Usage: "Country of origin",
		},
	}
	castFlags := []cli.Flag{
		&cli.IntFlag{
			Name:     "movie-id",
			Usage:    "Movie ID",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "actor-id",
			Usage:    "Actor ID",
			Required: true,
		},
	}

	return &cli.Command{
		Name:    "actors",
		Aliases: []string{"actor", "a"},
		Usage:   "Browse and manage actor profiles",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all actors",
				Flags:  jsonFlags(),
				Action: r.ActorsList,
			},
			{
				Name:   "get",
				Usage:  "Show an actor profile",
				Flags:  append([]cli.Flag{idFlag}, jsonFlags()...),
				Action: r.ActorsGet,
			},
			{
				Name:   "countries",
				Usage:  "List distinct actor nationalities",
				Flags:  jsonFlags(),
				Action: r.ActorsCountries,
			},
			{
				Name:   "create",
				Usage:  "Add an actor profile (admin)",
				Flags:  editFlags,
				Action: r.ActorsCreate,
			},
			{
				Name:   "update",
				Usage:  "Edit an actor profile (admin)",
				Flags:  append([]cli.Flag{idFlag}, editFlags...),
				Action: r.ActorsUpdate,
			},
			{
				Name:   "delete",
				Usage:  "Remove an actor profile (admin)",
				Flags:  []cli.Flag{idFlag},
				Action: r.ActorsDelete,
			},
			{
				Name:   "assign",
				Usage:  "Add an actor to a movie's cast (admin)",
				Flags:  castFlags,
				Action: r.ActorsAssign,
			},
			{
				Name:   "unassign",
				Usage:  "Remove an actor from a movie's cast (admin)",
				Flags:  castFlags,
				Action: r.ActorsUnassign,
			},
		},
	}
}

// watchlistCommand handles the user's watchlists
func watchlistCommand(r *Runner) *cli.Command {
	idFlag := &cli.IntFlag{
		Name:     "id",
		Usage:    "Watchlist ID",
		Required: true,
	}

	return &cli.Command{
		Name:    "watchlist",
		Aliases: []string{"wl", "w"},
		Usage:   "Manage your watchlists",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your watchlists",
				Flags:  jsonFlags(),
				Action: r.WatchlistList,
			},
			{
				Name:   "get",
				Usage:  "Show a watchlist with its movies",
				Flags:  append([]cli.Flag{idFlag}, jsonFlags()...),
				Action: r.WatchlistGet,
			},
			{
				Name:   "public",
				Usage:  "Browse public watchlists (no login required)",
				Flags:  jsonFlags(),
				Action: r.WatchlistPublic,
			},
			{
				Name:  "create",
				Usage: "Create a watchlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Watchlist title",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the watchlist public",
					},
				},
				Action: r.WatchlistCreate,
			},
			{
				Name:  "update",
				Usage: "Rename a watchlist or change its visibility",
				Flags: []cli.Flag{
					idFlag,
					&cli.StringFlag{
						Name:  "title",
						Usage: "New title",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the watchlist public",
					},
				},
				Action: r.WatchlistUpdate,
			},
			{
				Name:  "add",
				Usage: "Add a movie to a watchlist",
				Flags: []cli.Flag{
					idFlag,
					&cli.IntFlag{
						Name:     "movie-id",
						Usage:    "Movie ID to add",
						Required: true,
					},
				},
				Action: r.WatchlistAdd,
			},
			{
				Name:   "delete",
				Usage:  "Delete a watchlist",
				Flags:  []cli.Flag{idFlag},
				Action: r.WatchlistDelete,
			},
			{
				Name:  "export",
				Usage: "Export watchlists to disk",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "id",
						Usage: "Watchlist ID to export (default: all)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: json, csv, markdown, txt",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
				},
				Action: r.WatchlistExport,
			},
		},
	}
}

// ratingsCommand handles the user's movie ratings
func ratingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "ratings",
		Aliases: []string{"rating"},
		Usage:   "Manage your movie ratings",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List your rated movies",
				Flags:  jsonFlags(),
				Action: r.RatingsList,
			},
			{
				Name:  "create",
				Usage: "Rate a movie (1.0-5.0 in half-star steps)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "movie-id",
						Usage:    "Movie ID to rate",
						Required: true,
					},
					&cli.FloatFlag{
						Name:     "rating",
						Usage:    "Rating value",
						Required: true,
					},
				},
				Action: r.RatingsCreate,
			},
			{
				Name:  "update",
				Usage: "Change an existing rating",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Rating ID",
						Required: true,
					},
					&cli.FloatFlag{
						Name:     "rating",
						Usage:    "New rating value",
						Required: true,
					},
				},
				Action: r.RatingsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Remove a rating",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Rating ID",
						Required: true,
					},
				},
				Action: r.RatingsDelete,
			},
		},
	}
}

// reviewsCommand handles the user's movie reviews
func reviewsCommand(r *Runner) *cli.Command {
	contentFlag := &cli.StringFlag{
		Name:  "content",
		Usage: "Review text",
	}

	return &cli.Command{
		Name:    "reviews",
		Aliases: []string{"review"},
		Usage:   "Read and write movie reviews",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List reviews for a movie",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "movie-id",
						Usage:    "Movie ID",
						Required: true,
					},
				}, jsonFlags()...),
				Action: r.ReviewsList,
			},
			{
				Name:  "create",
				Usage: "Post a review on a movie",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "movie-id",
						Usage:    "Movie ID",
						Required: true,
					},
					contentFlag,
				},
				Action: r.ReviewsCreate,
			},
			{
				Name:  "update",
				Usage: "Edit one of your reviews",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Review ID",
						Required: true,
					},
					contentFlag,
				},
				Action: r.ReviewsUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete one of your reviews",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Review ID",
						Required: true,
					},
				},
				Action: r.ReviewsDelete,
			},
		},
	}
}

// homeCommand shows the signed-in dashboard
func homeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "home",
		Usage:  "Show your ratings and recommendations",
		Flags:  jsonFlags(),
		Action: r.Home,
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local cache database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing the catalog",
		Action:  r.TUI,
	}
}

package main

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/video-platform/internal/events"
	"github.com/example/video-platform/internal/handlers"
	"github.com/example/video-platform/internal/platform/auth"
	"github.com/example/video-platform/internal/platform/config"
	"github.com/example/video-platform/internal/platform/db"
	"github.com/example/video-platform/internal/platform/httpserver"
	"github.com/example/video-platform/internal/platform/logging"
	"github.com/example/video-platform/internal/platform/natsconn"
	"github.com/example/video-platform/internal/platform/run"
	"github.com/example/video-platform/internal/resolver"
	"github.com/example/video-platform/internal/store"
	"github.com/example/video-platform/internal/thread"
)

// stores bundles every persistence dependency of the comment core.
type stores struct {
	comments    store.CommentStore
	likes       store.LikeStore
	users       store.UserStore
	videos      store.VideoStore
	communities store.CommunityStore
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	st, pool := initStores(log)
	if pool != nil {
		defer pool.Close()
	}

	verifier := auth.JWTVerifier{Secret: []byte(cfg.JWTSecret)}

	res := &resolver.Resolver{
		Videos:      st.videos,
		Communities: st.communities,
		Comments:    st.comments,
	}
	asm := &thread.Assembler{
		Comments: st.comments,
		Likes:    st.likes,
		Users:    st.users,
	}

	// Events are best-effort; the service runs without NATS.
	publisher := initPublisher(log)

	r := chi.NewRouter()
	routerCfg := httpserver.RouterConfig{}
	if pool != nil {
		routerCfg.ReadyFunc = func() error { return pool.Ping(context.Background()) }
	}
	httpserver.SetupRouter(r, routerCfg)

	r.Route("/comment", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalUser(verifier))
			r.Get("/get/video", handlers.GetVideoComments(asm, res))
			r.Get("/get/community", handlers.GetCommunityComments(asm, res))
			r.Get("/get/comment", handlers.GetReplies(asm, res))
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser(verifier))
			r.Post("/post/video", handlers.PostVideoComment(st.comments, res, publisher))
			r.Post("/post/comment", handlers.PostReply(st.comments, res, publisher))
			r.Post("/post/community", handlers.PostCommunityComment(st.comments, res, publisher))
			r.Post("/update", handlers.UpdateComment(st.comments, publisher))
			r.Delete("/delete", handlers.DeleteComment(st.comments, publisher))
		})
	})

	r.Route("/like", func(r chi.Router) {
		r.Use(auth.RequireUser(verifier))
		r.Post("/comment", handlers.ToggleCommentLike(st.likes, st.comments, publisher))
	})

	srv := httpserver.New(httpserver.Options{
		Addr:        cfg.HTTP.Addr,
		ServiceName: cfg.ServiceName,
		Logger:      log,
		Router:      r,
	})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}

// initStores selects the persistence backend. In production
// (APP_ENV=production) a working Postgres connection is required and the
// process terminates otherwise; in development it falls back to the
// in-memory stores.
func initStores(log *zap.Logger) (stores, *pgxpool.Pool) {
	isProd := strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "production")

	memory := func() stores {
		return stores{
			comments:    store.NewInMemoryCommentStore(),
			likes:       store.NewInMemoryLikeStore(),
			users:       store.NewInMemoryUserStore(),
			videos:      store.NewInMemoryVideoStore(),
			communities: store.NewInMemoryCommunityStore(),
		}
	}

	pool, err := db.Open(context.Background())
	if err != nil {
		if isProd {
			log.Error("postgres is required in production but unavailable", zap.Error(err))
			_ = log.Sync()
			os.Exit(1)
		}
		log.Warn("postgres unavailable, using in-memory stores (development only)", zap.Error(err))
		return memory(), nil
	}

	log.Info("stores: postgres")
	return stores{
		comments:    store.NewPostgresCommentStore(pool),
		likes:       store.NewPostgresLikeStore(pool),
		users:       store.NewPostgresUserStore(pool),
		videos:      store.NewPostgresVideoStore(pool),
		communities: store.NewPostgresCommunityStore(pool),
	}, pool
}

// initPublisher connects to NATS for activity events. Failure is
// non-fatal: a nil publisher is a safe no-op.
func initPublisher(log *zap.Logger) *events.Publisher {
	nc, err := natsconn.Connect(natsconn.Options{})
	if err != nil {
		log.Warn("nats unavailable, comment events disabled", zap.Error(err))
		return nil
	}
	js, err := nc.JetStream()
	if err != nil {
		log.Warn("jetstream unavailable, comment events disabled", zap.Error(err))
		nc.Close()
		return nil
	}
	return events.New(js, log)
}

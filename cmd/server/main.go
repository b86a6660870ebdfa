package main

import (
    "log"

    "github.com/gin-contrib/sessions"
    "github.com/gin-contrib/sessions/redis"
    "github.com/gin-gonic/gin"

    "github.com/gatehouse-app/gatehouse/internal/auth"
    "github.com/gatehouse-app/gatehouse/internal/config"
    "github.com/gatehouse-app/gatehouse/internal/db"
)

func main() {
    // load configuration
    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("failed to load config: %v", err)
    }

    // initialize PostgreSQL
    conn, err := db.Init(cfg.DatabaseURL)
    if err != nil {
        log.Fatalf("db init: %v", err)
    }

    // run pending migrations
    if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
        log.Fatalf("db migrate: %v", err)
    }

    store := db.NewStore(conn)

    // sessions live server-side in Redis; the cookie only carries an
    // opaque ID. Redis' key TTL doubles as the idle expiry.
    sessionStore, err := redis.NewStore(10, "tcp",
        cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword,
        []byte(cfg.SessionSecret))
    if err != nil {
        log.Fatalf("session store: %v", err)
    }
    sessionStore.Options(sessions.Options{
        Path:     "/",
        MaxAge:   cfg.SessionMaxAge,
        HttpOnly: true,
    })

    // set up gin router
    r := gin.Default()
    RegisterRoutes(r, store, sessions.Sessions(auth.SessionCookieName, sessionStore), LoadTemplates())

    // start
    log.Printf("listening on %s", cfg.ServerAddress)
    if err := r.Run(cfg.ServerAddress); err != nil {
        log.Fatalf("server error: %v", err)
    }
}

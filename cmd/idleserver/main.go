// Package main provides the idle RPG server binary: it restores the save
// slot, runs the simulation loop, and persists progress until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/idlerpg/internal/config"
	"github.com/cory-johannsen/idlerpg/internal/game/character"
	"github.com/cory-johannsen/idlerpg/internal/game/combat"
	"github.com/cory-johannsen/idlerpg/internal/game/content"
	"github.com/cory-johannsen/idlerpg/internal/game/dice"
	"github.com/cory-johannsen/idlerpg/internal/game/item"
	"github.com/cory-johannsen/idlerpg/internal/observability"
	"github.com/cory-johannsen/idlerpg/internal/save"
	"github.com/cory-johannsen/idlerpg/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	name := flag.String("name", "Hero", "character name used when the save slot is empty")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := dice.NewCryptoSource()

	// Load content tables
	tableStart := time.Now()
	tables, err := content.LoadTables(cfg.Content.ZonesPath, cfg.Content.SkillsPath, src)
	if err != nil {
		logger.Fatal("loading content tables", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("zones", len(tables.Zones)),
		zap.Duration("elapsed", time.Since(tableStart)),
	)

	// Select the save slot backend
	var store save.Store
	switch cfg.Storage.Backend {
	case "postgres":
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		store = postgres.NewSlotStore(pool.DB())
	default:
		store = save.NewMemoryStore()
	}

	inventoryCap := cfg.Game.InventoryCap
	if inventoryCap <= 0 {
		inventoryCap = item.DefaultInventoryCap
	}

	// Restore the slot, or create a fresh character in the first zone
	char, eq, inv, zoneID := restore(ctx, store, cfg, tables, *name, inventoryCap, logger)

	engine := combat.NewEngine(char, eq, inv, tables, src, logger, nil, zoneID, combat.Options{
		AutoEquip:    cfg.Game.AutoEquip,
		EnhancedLoot: cfg.Game.EnhancedLoot,
		InventoryCap: inventoryCap,
	})

	saveFn := func(ctx context.Context) {
		var rec *save.Record
		engine.Export(func(c *character.Character, eq *item.Equipment, inv *item.Inventory, zoneID string) {
			rec = save.FromState(c, eq, inv, zoneID)
		})
		if err := store.Save(ctx, cfg.Game.Slot, rec); err != nil {
			logger.Error("saving slot", zap.Int("slot", cfg.Game.Slot), zap.Error(err))
		}
	}

	scheduler := combat.NewScheduler(engine, saveFn, cfg.Game.AutosaveInterval, logger)

	logger.Info("idle server started",
		zap.String("character", char.Name),
		zap.Int("level", char.Level),
		zap.String("zone", zoneID),
		zap.Int("slot", cfg.Game.Slot),
		zap.Duration("startup", time.Since(start)),
	)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	scheduler.Run(runCtx)

	logger.Info("idle server stopped",
		zap.Int("level", char.Level),
		zap.Int("kills", char.Kills),
	)
}

// restore loads the configured slot, falling back to a fresh level-1
// character when the slot is empty.
func restore(ctx context.Context, store save.Store, cfg config.Config, tables *content.Tables, name string, inventoryCap int, logger *zap.Logger) (*character.Character, *item.Equipment, *item.Inventory, string) {
	rec, err := store.Load(ctx, cfg.Game.Slot)
	if err != nil {
		// Read failures degrade to "no save"; the simulation never sees them.
		if !errors.Is(err, save.ErrSlotEmpty) {
			logger.Error("loading save slot", zap.Int("slot", cfg.Game.Slot), zap.Error(err))
		}
		char := character.New(name)
		char.SetSpeed(cfg.Game.Speed)
		logger.Info("starting fresh character", zap.String("name", name))
		return char, item.NewEquipment(), item.NewInventory(inventoryCap), tables.Zones[0].ID
	}

	char, eq, inv := rec.Apply(inventoryCap)
	zoneID := rec.ZoneID
	if tables.ZoneByID(zoneID) == nil {
		zoneID = tables.Zones[0].ID
	}
	logger.Info("restored save",
		zap.String("name", char.Name),
		zap.Int("level", char.Level),
		zap.Time("saved_at", rec.SavedAt),
	)
	return char, eq, inv, zoneID
}

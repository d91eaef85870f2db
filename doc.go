// Package hypixel is a client for the Hypixel statistics API and the Mojang
// identity API.
//
// A Client rotates through its API keys, waits out rate limits within a
// configurable time budget and optionally caches responses. Responses are
// turned into typed entities (Player, Guild, Status, ...) whose optional
// fields fall back to zero values when the upstream omits them.
//
//	cfg := hypixel.DefaultConfig()
//	cfg.Keys = []string{key}
//
//	client, err := hypixel.New(cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	player, err := client.Player(ctx, "duhby")
//	if errors.Is(err, hypixel.ErrNotFound) {
//		// ...
//	}
package hypixel

package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.Redis.VersionTTL <= 0 {
		return fmt.Errorf("redis.version_ttl must be positive (got %v)", c.Redis.VersionTTL)
	}
	if c.Collections.MinTrustLevelToCreate < 0 {
		return fmt.Errorf("collections.min_trust_level_to_create must be >= 0 (got %d)",
			c.Collections.MinTrustLevelToCreate)
	}
	if c.Collections.MaxPerUser <= 0 {
		return fmt.Errorf("collections.max_per_user must be > 0 (got %d)", c.Collections.MaxPerUser)
	}
	if c.Collections.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("collections.hard_delete_retention_days must be > 0 (got %d)",
			c.Collections.HardDeleteRetentionDays)
	}
	return nil
}

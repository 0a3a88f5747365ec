/*
 * Copyright 2025 teknohq.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
connection_config:
  type: postgres
  host: db.internal
  port: 5432
  username: catalog
  dbname: jobs
migrate_config:
  enable_migrate_on_startup: true
  enable_foreign_key: true
  foreign_key_file: configs/foreign_keys.yaml
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.ConnectionConfig.Type)
	assert.Equal(t, "db.internal", cfg.ConnectionConfig.Host)
	assert.Equal(t, 5432, cfg.ConnectionConfig.Port)
	assert.True(t, cfg.MigrateConfig.EnableMigrateOnStartup)
	assert.Equal(t, "configs/foreign_keys.yaml", cfg.MigrateConfig.ForeignKeyFile)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestForeignKeyConstraintSQL(t *testing.T) {
	fk := ForeignKeyConstraint{
		Table:           "jobs",
		Column:          "location_id",
		ReferenceTable:  "locations",
		ReferenceColumn: "id",
		OnDelete:        "RESTRICT",
	}
	assert.Equal(t, "fk_jobs_location_id", fk.GenerateConstraintName())
	assert.Equal(t,
		"ALTER TABLE jobs ADD CONSTRAINT fk_jobs_location_id FOREIGN KEY (location_id) REFERENCES locations(id) ON DELETE RESTRICT",
		fk.GenerateSQL())
}

func TestConfigurableForeignKeyManagerFallsBack(t *testing.T) {
	manager, err := NewConfigurableForeignKeyManager(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	constraints := manager.ListAllConstraints()
	require.Len(t, constraints, 2)
	assert.Equal(t, "locations", constraints[0].ReferenceTable)
	assert.Equal(t, "departments", constraints[1].ReferenceTable)
	assert.Empty(t, manager.ValidateConstraints())
}

func TestConfigurableForeignKeyManagerLoadsYAML(t *testing.T) {
	content := `
foreign_keys:
  - table: jobs
    column: location_id
    reference_table: locations
    reference_column: id
    on_delete: CASCADE
`
	path := filepath.Join(t.TempDir(), "foreign_keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	manager, err := NewConfigurableForeignKeyManager(nil, path)
	require.NoError(t, err)

	constraints := manager.ListAllConstraints()
	require.Len(t, constraints, 1)
	assert.Equal(t, "CASCADE", constraints[0].OnDelete)
}

// Package envfile generates the .env and .env.example files for a
// project's database selection.
//
// Serialization goes through github.com/joho/godotenv so quoting and
// escaping match what dotenv loaders in the generated stacks expect,
// rather than hand-rolled string concatenation.
package envfile

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/tessera-labs/stackforge/internal/model"
)

// changeMeMarker is the placeholder written into .env.example so the
// credentials never look usable as-is.
const changeMeMarker = "change-me"

// Render produces the .env and .env.example bodies for the given
// project name and database. The .env file carries working local
// defaults; the example file carries the same keys with placeholder
// credentials.
func Render(projectName string, db model.Database) (env []byte, example []byte, err error) {
	vars, err := variables(projectName, db, false)
	if err != nil {
		return nil, nil, err
	}
	placeholders, err := variables(projectName, db, true)
	if err != nil {
		return nil, nil, err
	}

	envBody, err := marshal(vars)
	if err != nil {
		return nil, nil, err
	}
	exampleBody, err := marshal(placeholders)
	if err != nil {
		return nil, nil, err
	}

	return envBody, exampleBody, nil
}

// variables returns the key/value set for a database. With placeholder
// set, secret-bearing values are replaced by the change-me marker.
func variables(projectName string, db model.Database, placeholder bool) (map[string]string, error) {
	password := "postgres"
	if placeholder {
		password = changeMeMarker
	}

	switch db {
	case model.DatabasePostgres:
		return map[string]string{
			"DATABASE_URL":      fmt.Sprintf("postgresql://postgres:%s@localhost:5432/%s", password, projectName),
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       projectName,
			"POSTGRES_PORT":     "5432",
		}, nil

	case model.DatabaseMySQL:
		if !placeholder {
			password = "mysql"
		}
		return map[string]string{
			"DATABASE_URL":   fmt.Sprintf("mysql://root:%s@localhost:3306/%s", password, projectName),
			"MYSQL_USER":     "root",
			"MYSQL_PASSWORD": password,
			"MYSQL_DATABASE": projectName,
			"MYSQL_PORT":     "3306",
		}, nil

	case model.DatabaseMongoDB:
		// Local MongoDB runs without auth by default, so no password keys.
		return map[string]string{
			"MONGODB_URI":  fmt.Sprintf("mongodb://localhost:27017/%s", projectName),
			"MONGODB_PORT": "27017",
		}, nil

	case model.DatabaseSQLite:
		return map[string]string{
			"DATABASE_PATH": fmt.Sprintf("./data/%s.sqlite", projectName),
		}, nil

	default:
		return nil, fmt.Errorf("envfile: no template for database %q", db)
	}
}

// marshal serializes the variable map through godotenv and ensures a
// trailing newline.
func marshal(vars map[string]string) ([]byte, error) {
	body, err := godotenv.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("envfile: marshal: %w", err)
	}
	return []byte(body + "\n"), nil
}

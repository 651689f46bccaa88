// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package sales

// SchemaStatements create the sales tables. The DDL is portable between
// DuckDB and PostgreSQL.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cities (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cinemas (
		id INTEGER PRIMARY KEY,
		city_id INTEGER NOT NULL REFERENCES cities(id),
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id INTEGER PRIMARY KEY,
		cinema_id INTEGER NOT NULL REFERENCES cinemas(id),
		name VARCHAR NOT NULL,
		size VARCHAR NOT NULL,
		seats INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id INTEGER PRIMARY KEY,
		original_title VARCHAR NOT NULL,
		release_date DATE NOT NULL,
		original_language VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movie_genres (
		movie_id INTEGER NOT NULL REFERENCES movies(id),
		genre_id INTEGER NOT NULL REFERENCES genres(id),
		PRIMARY KEY (movie_id, genre_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY,
		room_id INTEGER NOT NULL REFERENCES rooms(id),
		movie_id INTEGER NOT NULL REFERENCES movies(id),
		start_time TIMESTAMP NOT NULL,
		seats_sold INTEGER NOT NULL
	)`,
}

// DemoDataStatements load two cities of sample sales. Bilbao has six
// movies on screen so the top five cut is visible. Re-running them is a no-op.
var DemoDataStatements = []string{
	`INSERT INTO cities (id, name) VALUES
		(1, 'Bilbao'),
		(2, 'Madrid')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO cinemas (id, city_id, name) VALUES
		(1, 1, 'Zubiarte'),
		(2, 1, 'Ballonti'),
		(3, 2, 'Callao')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO rooms (id, cinema_id, name, size, seats) VALUES
		(1, 1, 'Sala 1', 'big', 320),
		(2, 1, 'Sala 2', 'small', 90),
		(3, 2, 'Sala 1', 'big', 280),
		(4, 3, 'Sala 1', 'big', 400)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO movies (id, original_title, release_date, original_language) VALUES
		(1, 'The Godfather', DATE '1972-03-14', 'en'),
		(2, 'Pulp Fiction', DATE '1994-09-10', 'en'),
		(3, 'Spirited Away', DATE '2001-07-20', 'ja'),
		(4, 'The Dark Knight', DATE '2008-07-16', 'en'),
		(5, 'Amélie', DATE '2001-04-25', 'fr'),
		(6, 'Ocho apellidos vascos', DATE '2014-03-14', 'es'),
		(7, 'Mad Max: Fury Road', DATE '2015-05-13', 'en')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO genres (id, name) VALUES
		(1, 'Action'),
		(2, 'Animation'),
		(3, 'Comedy'),
		(4, 'Crime'),
		(5, 'Drama'),
		(6, 'Fantasy'),
		(7, 'Romance'),
		(8, 'Thriller')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO movie_genres (movie_id, genre_id) VALUES
		(1, 4), (1, 5),
		(2, 4), (2, 8),
		(3, 2), (3, 6),
		(4, 1), (4, 4), (4, 5),
		(5, 3), (5, 7),
		(6, 3), (6, 7),
		(7, 1), (7, 8)
	ON CONFLICT DO NOTHING`,
	`INSERT INTO sessions (id, room_id, movie_id, start_time, seats_sold) VALUES
		(1, 1, 6, TIMESTAMP '2024-01-05 20:00:00', 310),
		(2, 3, 6, TIMESTAMP '2024-01-06 20:00:00', 250),
		(3, 1, 4, TIMESTAMP '2024-01-05 17:00:00', 290),
		(4, 3, 4, TIMESTAMP '2024-01-06 17:00:00', 200),
		(5, 1, 1, TIMESTAMP '2024-01-07 20:00:00', 300),
		(6, 2, 2, TIMESTAMP '2024-01-05 22:00:00', 85),
		(7, 3, 2, TIMESTAMP '2024-01-07 22:00:00', 150),
		(8, 2, 3, TIMESTAMP '2024-01-06 12:00:00', 80),
		(9, 2, 5, TIMESTAMP '2024-01-07 18:00:00', 40),
		(10, 4, 7, TIMESTAMP '2024-01-05 21:00:00', 390),
		(11, 4, 1, TIMESTAMP '2024-01-06 21:00:00', 120)
	ON CONFLICT DO NOTHING`,
}

package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  day string not null,
  id integer not null,
  time datetime,
  black varchar,
  white varchar,
  black_discs int,
  white_discs int,
  winner string,
  plies int,
  moves varchar
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  day, id, player, opponent, color, win, discs, opponent_discs, plies
) AS
SELECT day, id, black, white, 'black',
       CASE winner WHEN 'white' THEN 'lose' WHEN 'black' THEN 'win' ELSE 'tie' END,
       black_discs, white_discs, plies
 FROM games
UNION ALL
SELECT day, id, white, black, 'white',
       CASE winner WHEN 'white' THEN 'win' WHEN 'black' THEN 'lose' ELSE 'tie' END,
       white_discs, black_discs, plies
 FROM games
`

const insertStmt = `
INSERT INTO games (day, id, time, black, white, black_discs, white_discs, winner, plies, moves)
VALUES (:day, :id, :time, :black, :white, :black_discs, :white_discs, :winner, :plies, :moves)
`

const selectGames = `
SELECT day, id, time, black, white, black_discs, white_discs, winner, plies, moves
 FROM games
 ORDER BY day, id
`

const selectRecords = `
SELECT player,
       SUM(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       SUM(CASE win WHEN 'lose' THEN 1 ELSE 0 END) AS losses,
       SUM(CASE win WHEN 'tie' THEN 1 ELSE 0 END) AS ties
 FROM player_games
 GROUP BY player
 ORDER BY player
`

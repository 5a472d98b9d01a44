package matches

// Status is where a match is in its lifecycle.
type Status int

const (
	StatusUpcoming Status = iota
	StatusLive
	StatusFinished
)

// Match is one fixture on the board.
type Match struct {
	Competition string
	Home        string
	Away        string
	HomeScore   int
	AwayScore   int
	Status      Status
	Minute      int    // live matches only
	Kickoff     string // upcoming matches only, local "15:04"
}

// Fixtures returns the demo fixtures shown on the board.
func Fixtures() []Match {
	return []Match{
		{Competition: "Premier League", Home: "Arsenal", Away: "Chelsea", HomeScore: 2, AwayScore: 1, Status: StatusLive, Minute: 67},
		{Competition: "Premier League", Home: "Liverpool", Away: "Everton", HomeScore: 3, AwayScore: 0, Status: StatusFinished},
		{Competition: "Premier League", Home: "Newcastle", Away: "Aston Villa", Status: StatusUpcoming, Kickoff: "17:30"},
		{Competition: "Premier League", Home: "Brighton", Away: "Fulham", Status: StatusUpcoming, Kickoff: "20:00"},
		{Competition: "La Liga", Home: "Real Madrid", Away: "Sevilla", HomeScore: 1, AwayScore: 1, Status: StatusLive, Minute: 34},
		{Competition: "La Liga", Home: "Barcelona", Away: "Valencia", HomeScore: 4, AwayScore: 2, Status: StatusFinished},
		{Competition: "La Liga", Home: "Real Sociedad", Away: "Villarreal", Status: StatusUpcoming, Kickoff: "21:00"},
		{Competition: "Serie A", Home: "Inter", Away: "Napoli", HomeScore: 0, AwayScore: 0, Status: StatusLive, Minute: 12},
		{Competition: "Serie A", Home: "Juventus", Away: "Roma", HomeScore: 2, AwayScore: 2, Status: StatusFinished},
		{Competition: "Serie A", Home: "Atalanta", Away: "Lazio", Status: StatusUpcoming, Kickoff: "18:00"},
		{Competition: "Bundesliga", Home: "Bayern", Away: "Dortmund", HomeScore: 3, AwayScore: 2, Status: StatusFinished},
		{Competition: "Bundesliga", Home: "Leverkusen", Away: "Leipzig", HomeScore: 1, AwayScore: 0, Status: StatusLive, Minute: 81},
		{Competition: "Bundesliga", Home: "Frankfurt", Away: "Freiburg", Status: StatusUpcoming, Kickoff: "15:30"},
		{Competition: "Ligue 1", Home: "PSG", Away: "Marseille", Status: StatusUpcoming, Kickoff: "20:45"},
		{Competition: "Ligue 1", Home: "Lyon", Away: "Monaco", HomeScore: 1, AwayScore: 3, Status: StatusFinished},
		{Competition: "Ligue 1", Home: "Lille", Away: "Nice", HomeScore: 0, AwayScore: 1, Status: StatusLive, Minute: 55},
	}
}

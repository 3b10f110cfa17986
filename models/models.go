package models

// Game is one row of the games table.
type Game struct {
	GameID          int64  `json:"gameid" yaml:"gameid"`
	HomeTeamAbbr    string `json:"hometeamabbr" yaml:"hometeamabbr"`
	VisitorTeamAbbr string `json:"visitorteamabbr" yaml:"visitorteamabbr"`
}

// Play is the full plays row needed to animate a play.
type Play struct {
	GameID                 int64  `json:"gameid" yaml:"gameid"`
	PlayID                 int64  `json:"playid" yaml:"playid"`
	PlayDescription        string `json:"playdescription" yaml:"playdescription"`
	Down                   int    `json:"down" yaml:"down"`
	Quarter                int    `json:"quarter" yaml:"quarter"`
	AbsoluteYardlineNumber int    `json:"absoluteyardlinenumber" yaml:"absoluteyardlinenumber"`
	YardsToGo              int    `json:"yardstogo" yaml:"yardstogo"`
}

// PlaySummary is the short form listed for a game.
type PlaySummary struct {
	PlayID          int64  `json:"playid"`
	PlayDescription string `json:"playdescription"`
	Quarter         int    `json:"quarter"`
	GameClock       string `json:"gameclock"`
}

// TrackingRow is one player (or ball) sample at one frame of a play.
// Club is "football" for the ball.
type TrackingRow struct {
	GameID        int64   `json:"gameid" yaml:"gameid"`
	PlayID        int64   `json:"playid" yaml:"playid"`
	NflID         int64   `json:"nflid" yaml:"nflid"`
	PlayDirection string  `json:"playdirection" yaml:"playdirection"`
	Club          string  `json:"club" yaml:"club"`
	FrameID       int     `json:"frameid" yaml:"frameid"`
	S             float64 `json:"s" yaml:"s"`
	A             float64 `json:"a" yaml:"a"`
	Dir           float64 `json:"dir" yaml:"dir"`
	Dis           float64 `json:"dis" yaml:"dis"`
	DisplayName   string  `json:"displayname" yaml:"displayname"`
	X             float64 `json:"x" yaml:"x"`
	Y             float64 `json:"y" yaml:"y"`
}

// Football is the club value carried by ball samples.
const Football = "football"

// WeeksResponse is the payload of GET /api/weeks.
type WeeksResponse struct {
	Weeks []int `json:"weeks"`
}

// GamesResponse is the payload of GET /api/games/{week}.
type GamesResponse struct {
	Games []Game `json:"games"`
}

// PlaysResponse is the payload of GET /api/plays/{game_id}.
type PlaysResponse struct {
	Plays []PlaySummary `json:"plays"`
}

// PlayData is the payload of GET /api/play/{game_id}/{play_id}.
type PlayData struct {
	GameData     []Game        `json:"game_data"`
	PlayData     []Play        `json:"play_data"`
	TrackingData []TrackingRow `json:"tracking_data"`
}

package statsapi

// Wire types for the schedule endpoint. Only the fields the scoreboard renders
// are decoded; everything else in the payload is ignored.

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk    int                `json:"gamePk"`
	Status    statusResponse     `json:"status"`
	Teams     teamsResponse      `json:"teams"`
	Linescore *linescoreResponse `json:"linescore"`
	Decisions *decisionsResponse `json:"decisions"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type teamsResponse struct {
	Away sideResponse `json:"away"`
	Home sideResponse `json:"home"`
}

type sideResponse struct {
	Team struct {
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	ProbablePitcher *probableResponse `json:"probablePitcher"`
}

type probableResponse struct {
	FullName  string `json:"fullName"`
	PitchHand struct {
		Code string `json:"code"`
	} `json:"pitchHand"`
	Note string `json:"note"`
}

type linescoreResponse struct {
	CurrentInningOrdinal string `json:"currentInningOrdinal"`
	InningHalf           string `json:"inningHalf"`
	Balls                int    `json:"balls"`
	Strikes              int    `json:"strikes"`
	Outs                 int    `json:"outs"`

	Teams struct {
		Away teamLineResponse `json:"away"`
		Home teamLineResponse `json:"home"`
	} `json:"teams"`

	Offense struct {
		Batter *personResponse `json:"batter"`
		First  *personResponse `json:"first"`
		Second *personResponse `json:"second"`
		Third  *personResponse `json:"third"`
	} `json:"offense"`

	Defense struct {
		Pitcher *personResponse `json:"pitcher"`
	} `json:"defense"`
}

type teamLineResponse struct {
	Runs   *int `json:"runs"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

type personResponse struct {
	FullName string `json:"fullName"`
}

type decisionsResponse struct {
	Winner *personResponse `json:"winner"`
	Loser  *personResponse `json:"loser"`
	Save   *personResponse `json:"save"`
}

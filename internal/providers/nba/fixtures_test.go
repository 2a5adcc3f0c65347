package nba

const teamsBody = `{
	"league": {
		"standard": [
			{"isNBAFranchise": true, "isAllStar": false, "city": "Atlanta", "altCityName": "Atlanta", "fullName": "Atlanta Hawks", "tricode": "ATL", "teamId": "1610612737", "nickname": "Hawks", "urlName": "hawks", "teamShortName": "Atlanta", "confName": "East", "divName": "Southeast"},
			{"isNBAFranchise": false, "isAllStar": true, "city": "Team LeBron", "fullName": "Team LeBron", "tricode": "LBN", "teamId": 1610616833, "nickname": "LeBron"},
			{"isNBAFranchise": true, "isAllStar": false, "city": "Utah", "altCityName": "Utah", "fullName": "Utah Jazz", "tricode": "UTA", "teamId": "1610612762", "nickname": "Jazz", "urlName": "jazz", "teamShortName": "Utah", "confName": "West", "divName": "Northwest"}
		]
	}
}`

const playersBody = `{
	"league": {
		"standard": [
			{"firstName": "Stephen", "lastName": "Curry", "temporaryDisplayName": "Curry, Stephen", "personId": "201939", "teamId": "1610612744", "jersey": "30", "isActive": true, "pos": "G", "heightFeet": "6", "heightInches": "2", "heightMeters": "1.88", "weightPounds": "185", "weightKilograms": "83.9", "dateOfBirthUTC": "1988-03-14", "teams": [{"teamId": "1610612744", "seasonStart": "2009", "seasonEnd": "2020"}], "draft": {"teamId": "1610612744", "pickNum": "7", "roundNum": "1", "seasonYear": "2009"}, "nbaDebutYear": "2009", "yearsPro": "11", "collegeName": "Davidson", "lastAffiliation": "Davidson/USA", "country": "USA"},
			{"firstName": "Retired", "lastName": "Player", "personId": "1", "isActive": false, "heightFeet": "-", "dateOfBirthUTC": "nope"},
			{"firstName": "Fred", "lastName": "VanVleet", "personId": "1627832", "teamId": "1610612761", "jersey": "23", "isActive": true, "pos": "G", "heightFeet": 6, "heightInches": 1, "heightMeters": 1.85, "weightPounds": 197, "weightKilograms": 89.4, "dateOfBirthUTC": "1994-02-25", "teams": [], "draft": {"teamId": "", "pickNum": "", "roundNum": "", "seasonYear": ""}, "nbaDebutYear": "2016", "yearsPro": "4", "collegeName": "Wichita State", "lastAffiliation": "Wichita State/USA", "country": "USA"}
		]
	}
}`

const profileBody = `{
	"league": {
		"standard": {
			"teamId": "1610612744",
			"stats": {
				"latest": {"seasonYear": 2020, "seasonStageId": 2, "ppg": "30.1", "rpg": "5.5", "apg": "6.2", "mpg": "34.2", "topg": "3.4", "spg": "1.2", "bpg": "0.1", "tpp": "42.1", "ftp": "91.6", "fgp": "48.2", "assists": "390", "blocks": "8", "steals": "77", "turnovers": "213", "offReb": "28", "defReb": "318", "totReb": "346", "fgm": "658", "fga": "1365", "tpm": "337", "tpa": "801", "ftm": "362", "fta": "395", "pFouls": "119", "points": "2015", "gamesPlayed": "63", "gamesStarted": "63", "plusMinus": "82", "min": "2152", "dd2": "9", "td3": "0"},
				"careerSummary": {"tpp": "43.2", "ftp": "90.7", "fgp": "47.8", "ppg": "24.2", "rpg": "4.6", "apg": "6.5", "bpg": "0.2", "mpg": "34.3", "spg": "1.7", "assists": "4380", "blocks": "137", "steals": "1146", "turnovers": "70", "offReb": "420", "defReb": "2688", "totReb": "3108", "fgm": "5930", "fga": "12410", "tpm": "2832", "tpa": "6548", "ftm": "2631", "fta": "2900", "pFouls": "1676", "points": "17323", "gamesPlayed": "60", "gamesStarted": "60", "plusMinus": "3990", "min": "23045", "dd2": "73", "td3": "8"}
			}
		}
	}
}`

const teamLeadersBody = `{
	"league": {
		"standard": {
			"seasonYear": 2020,
			"ppg": [{"personId": "201939", "value": "32.0"}],
			"trpg": [{"personId": "1626172", "value": "8.4"}],
			"apg": [{"personId": "203110", "value": "7.2"}],
			"fgp": [{"personId": "1629673", "value": ".602"}],
			"tpp": [{"personId": "201939", "value": ".421"}],
			"ftp": [{"personId": "201939", "value": ".916"}],
			"bpg": [{"personId": "1626172", "value": "1.1"}],
			"spg": [{"personId": "203110", "value": "1.7"}],
			"tpg": [{"personId": "203110", "value": "3.5"}],
			"pfpg": [{"personId": "203110", "value": "3.0"}]
		}
	}
}`

const teamScheduleBody = `{
	"league": {
		"standard": [
			{
				"gameId": "0022000001",
				"seasonStageId": 2,
				"gameUrlCode": "20201222/GSWBKN",
				"statusNum": 3,
				"startTimeUTC": "2020-12-23T00:00:00.000Z",
				"startDateEastern": "20201222",
				"isHomeTeam": false,
				"vTeam": {"teamId": "1610612744", "score": "99"},
				"hTeam": {"teamId": "1610612751", "score": "125"},
				"watch": {"broadcast": {
					"video": {
						"national": {"broadcasters": [{"shortName": "TNT"}]},
						"canadian": {"broadcasters": []},
						"vTeam": {"broadcasters": [{"shortName": "NBCSBA"}]}
					},
					"audio": {
						"national": {"broadcasters": [{"shortName": "ESPN Radio"}]},
						"hTeam": {"broadcasters": [{"shortName": "WFAN"}, {"shortName": "WFAN-FM"}]}
					}
				}}
			},
			{
				"gameId": "0022000020",
				"seasonStageId": 2,
				"gameUrlCode": "20201225/GSWMIL",
				"statusNum": 1,
				"startTimeUTC": "2020-12-25T22:30:00.000Z",
				"startDateEastern": "20201225",
				"isHomeTeam": true,
				"vTeam": {"teamId": "1610612749", "score": ""},
				"hTeam": {"teamId": "1610612744", "score": ""}
			}
		]
	}
}`

const coachesBody = `{
	"league": {
		"standard": [
			{"firstName": "Steve", "lastName": "Kerr", "isAssistant": false, "personId": "1452", "teamId": "1610612744", "sortSequence": "1", "college": "Arizona"},
			{"firstName": "Mike", "lastName": "Brown", "isAssistant": true, "personId": "2563", "teamId": "1610612744", "sortSequence": "2", "college": ""}
		]
	}
}`

const rankingsBody = `{
	"league": {
		"standard": {
			"seasonYear": 2020,
			"regularSeason": {
				"teams": [
					{"teamId": "1610612737", "abbreviation": "ATL", "name": "Atlanta", "nickname": "Hawks",
					 "min": {"avg": "241.5", "rank": "10"}, "fgp": {"avg": "0.468", "rank": "9"}, "tpp": {"avg": "0.373", "rank": "10"}, "ftp": {"avg": "0.812", "rank": "7"},
					 "orpg": {"avg": "10.6", "rank": "6"}, "drpg": {"avg": "35.2", "rank": "11"}, "trpg": {"avg": "45.8", "rank": "5"}, "apg": {"avg": "24.1", "rank": "22"},
					 "tpg": {"avg": "13.2", "rank": "10"}, "spg": {"avg": "7.0", "rank": "25"}, "bpg": {"avg": "4.8", "rank": "17"}, "pfpg": {"avg": "19.3", "rank": "16"},
					 "ppg": {"avg": "113.7", "rank": "11"}, "oppg": {"avg": "111.4", "rank": "16"}, "eff": {"avg": "126.0", "rank": "9"}},
					{"teamId": "0", "abbreviation": "", "name": "League Average", "nickname": "", "min": "n/a"}
				]
			}
		}
	}
}`

const standingsBody = `{
	"league": {
		"standard": {
			"seasonYear": 2020,
			"teams": [
				{"teamId": "1610612762", "win": "52", "loss": "20", "winPct": ".722", "lossPct": ".278", "gamesBehind": "0.0", "divGamesBehind": "0.0", "clinchedPlayoffsCode": "w", "confRank": "1", "confWin": "32", "confLoss": "12", "divWin": "11", "divLoss": "5", "homeWin": "31", "homeLoss": "5", "awayWin": "21", "awayLoss": "15", "lastTenWin": "7", "lastTenLoss": "3", "streak": "3", "divRank": "1", "isWinStreak": true,
				 "teamSitesOnly": {"teamKey": "Utah", "teamName": "Utah", "teamCode": "jazz", "teamNickname": "Jazz", "teamTricode": "UTA"}}
			]
		}
	}
}`

const scheduleBody = `{
	"resource": "internationalbroadcasterschedule",
	"resultSets": [
		{"NextGameList": []},
		{"CompleteGameList": [
			{"gameID": "0022000001", "vtAbbreviation": "GSW", "vtCity": "Golden State", "vtNickName": "Warriors", "htAbbreviation": "BKN", "htCity": "Brooklyn", "htNickName": "Nets", "date": "12/22/2020", "time": "07:00 PM", "broadcasterName": "TNT"},
			{"gameID": "0022000001", "vtAbbreviation": "GSW", "vtCity": "Golden State", "vtNickName": "Warriors", "htAbbreviation": "BKN", "htCity": "Brooklyn", "htNickName": "Nets", "date": "12/22/2020", "time": "07:00 PM", "broadcasterName": "NBA TV Canada"},
			{"gameID": "0022000002", "vtAbbreviation": "LAC", "vtCity": "LA", "vtNickName": "Clippers", "htAbbreviation": "LAL", "htCity": "Los Angeles", "htNickName": "Lakers", "date": "12/22/2020", "time": "TBD", "broadcasterName": ""},
			{"gameID": "0022000010", "vtAbbreviation": "MIA", "vtCity": "Miami", "vtNickName": "Heat", "htAbbreviation": "ORL", "htCity": "Orlando", "htNickName": "Magic", "date": "12/23/2020", "time": "bad", "broadcasterName": "ESPN"}
		]}
	]
}`

const boxscoreBody = `{
	"basicGameData": {
		"gameId": "0022000001",
		"hTeam": {"teamId": "1610612751", "triCode": "BKN", "score": "125"},
		"vTeam": {"teamId": "1610612744", "triCode": "GSW", "score": "99"}
	},
	"stats": {
		"activePlayers": [
			{"personId": "201939", "firstName": "Stephen", "lastName": "Curry", "jersey": "30", "teamId": "1610612744", "isOnCourt": false, "points": "20", "pos": "PG", "min": "32:15", "fgm": "7", "fga": "21", "fgp": "33.3", "ftm": "3", "fta": "3", "ftp": "100.0", "tpm": "3", "tpa": "13", "tpp": "23.1", "offReb": "0", "defReb": "5", "totReb": "5", "assists": "10", "pFouls": "2", "steals": "1", "turnovers": "3", "blocks": "0", "plusMinus": "-23", "dnp": ""},
			{"personId": "1628539", "firstName": "Mychal", "lastName": "Mulder", "jersey": "12", "teamId": "1610612744", "isOnCourt": false, "points": "", "pos": "", "min": "", "dnp": "Coach's Decision"},
			{"personId": "202681", "firstName": "Kyrie", "lastName": "Irving", "jersey": "11", "teamId": "1610612751", "isOnCourt": true, "points": 26, "pos": "PG", "min": "30:00", "fgm": 10, "fga": 20, "fgp": 50, "ftm": 2, "fta": 2, "ftp": 100, "tpm": 4, "tpa": 6, "tpp": 66.7, "offReb": 1, "defReb": 2, "totReb": 3, "assists": 4, "pFouls": 1, "steals": 1, "turnovers": 1, "blocks": 0, "plusMinus": 20}
		]
	}
}`

const leadTrackerBody = `{
	"plays": [
		{"clock": "11:38", "leadTeamId": "1610612751", "points": "2"},
		{"clock": "11:02", "leadTeamId": "", "points": "0"},
		{"clock": "10:45", "leadTeamId": "1610612744", "points": "3"}
	]
}`

const leadersHeaders = `["PLAYER_ID","RANK","PLAYER","TEAM","GP","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PTS","EFF"]`

const leadersTotalsBody = `{
	"resource": "leagueleaders",
	"resultSet": {
		"name": "LeagueLeaders",
		"headers": ` + leadersHeaders + `,
		"rowSet": [
			[201939, 1, "Stephen Curry", "GSW", 63, 2152, 658, 1365, 0.482, 337, 801, 0.421, 362, 395, 0.916, 28, 318, 346, 363, 77, 8, 213, 2015, 1822],
			[203081, 2, "Damian Lillard", "POR", 67, 2398, 578, 1285, 0.451, 275, 704, 0.391, 488, 526, 0.928, 36, 283, 319, 503, 62, 18, 202, 1919, 1856]
		]
	}
}`

const leadersAveragesBody = `{
	"resource": "leagueleaders",
	"resultSet": {
		"name": "LeagueLeaders",
		"headers": ` + leadersHeaders + `,
		"rowSet": [
			[201939, 1, "Stephen Curry", "GSW", 63, 34.2, 10.4, 21.7, 0.482, 5.3, 12.7, 0.421, 5.7, 6.3, 0.916, 0.4, 5.0, 5.5, 5.8, 1.2, 0.1, 3.4, 32.0, 28.9]
		]
	}
}`

// This file is part of vcsplay.
//
// vcsplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcsplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcsplay.  If not, see <https://www.gnu.org/licenses/>.

package catalog

// location of the game programs
const gameServer = "https://ksapplications.blob.core.windows.net/atari-roms/"

// test programs are served by the catalog server. the URLs are relative to
// that server
var testPrograms = []Entry{
	{
		Name:         "collect-01",
		Description:  "Step 1 - Generate a Stable Display",
		URL:          "/roms/collect_1.bin",
		StartAddress: 0xf800,
	},
	{
		Name:         "collect-02",
		Description:  "Step 2 - Timers",
		URL:          "/roms/collect_2.bin",
		StartAddress: 0xf800,
	},
	{
		Name:         "collect-03",
		Description:  "Step 3 - Score & Timer display",
		URL:          "/roms/collect_3.bin",
		StartAddress: 0xf800,
	},
	{
		Name:         "8blit-s01e04-playfield-01",
		Description:  "8blit-s01e04-Playfield-01",
		URL:          "/roms/8blit-s01e04-Playfield-01.bin",
		StartAddress: 0xf000,
		InfoURL:      "https://github.com/kreiach/8Blit/tree/main/s01e04%20-%20Playfield%20Registers",
	},
	{
		Name:         "asymmetric",
		Description:  "Asymmetric Graphics",
		URL:          "/asymmetric.bin",
		StartAddress: 0xf000,
		InfoURL:      "https://www.vbforums.com/showthread.php?834149-Atari-2600-Programming-Tutorial-4-Asymmetric-Graphics!-(Demo-Included)",
	},
}

// games and their sizes in kilobytes. the URL and start address of each game
// is filled in by New()
var games = []Entry{
	{Name: "adventure", SizeKB: 4},
	{Name: "air_raid", SizeKB: 4},
	{Name: "alien", SizeKB: 4},
	{Name: "amidar", SizeKB: 4},
	{Name: "assault", SizeKB: 4},
	{Name: "asterix", SizeKB: 8},
	{Name: "asteroids", SizeKB: 8},
	{Name: "atlantis", SizeKB: 4},
	{Name: "atlantis2", SizeKB: 4},
	{Name: "backgammon", SizeKB: 4},
	{Name: "bank_heist", SizeKB: 4},
	{Name: "basic_math", SizeKB: 2},
	{Name: "battle_zone", SizeKB: 8},
	{Name: "beam_rider", SizeKB: 8},
	{Name: "berzerk", SizeKB: 4},
	{Name: "blackjack", SizeKB: 2},
	{Name: "bowling", SizeKB: 2},
	{Name: "boxing", SizeKB: 2},
	{Name: "breakout", SizeKB: 2},
	{Name: "carnival", SizeKB: 4},
	{Name: "casino", SizeKB: 4},
	{Name: "centipede", SizeKB: 8},
	{Name: "chopper_command", SizeKB: 4},
	{Name: "combat", SizeKB: 2},
	{Name: "crazy_climber", SizeKB: 8},
	{Name: "crossbow", SizeKB: 16},
	{Name: "darkchambers", SizeKB: 16},
	{Name: "defender", SizeKB: 4},
	{Name: "demon_attack", SizeKB: 4},
	{Name: "donkey_kong", SizeKB: 4},
	{Name: "double_dunk", SizeKB: 16},
	{Name: "earthworld", SizeKB: 8},
	{Name: "elevator_action", SizeKB: 8},
	{Name: "enduro", SizeKB: 4},
	{Name: "entombed", SizeKB: 4},
	{Name: "et", SizeKB: 8},
	{Name: "fishing_derby", SizeKB: 2},
	{Name: "flag_capture", SizeKB: 2},
	{Name: "freeway", SizeKB: 2},
	{Name: "frogger", SizeKB: 4},
	{Name: "frostbite", SizeKB: 4},
	{Name: "galaxian", SizeKB: 8},
	{Name: "gopher", SizeKB: 4},
	{Name: "gravitar", SizeKB: 8},
	{Name: "hangman", SizeKB: 4},
	{Name: "haunted_house", SizeKB: 4},
	{Name: "hero", SizeKB: 8},
	{Name: "human_cannonball", SizeKB: 2},
	{Name: "ice_hockey", SizeKB: 4},
	{Name: "jamesbond", SizeKB: 8},
	{Name: "journey_escape", SizeKB: 4},
	{Name: "joust", SizeKB: 8},
	{Name: "kaboom", SizeKB: 2},
	{Name: "kangaroo", SizeKB: 8},
	{Name: "keystone_kapers", SizeKB: 4},
	{Name: "king_kong", SizeKB: 4},
	{Name: "klax", SizeKB: 16},
	{Name: "koolaid", SizeKB: 4},
	{Name: "krull", SizeKB: 8},
	{Name: "kung_fu_master", SizeKB: 8},
	{Name: "laser_gates", SizeKB: 4},
	{Name: "lost_luggage", SizeKB: 4},
	{Name: "mario_bros", SizeKB: 8},
	{Name: "maze_craze", SizeKB: 4},
	{Name: "miniature_golf", SizeKB: 2},
	{Name: "montezuma_revenge", SizeKB: 8},
	{Name: "mr_do", SizeKB: 8},
	{Name: "ms_pacman", SizeKB: 8},
	{Name: "name_this_game", SizeKB: 4},
	{Name: "othello", SizeKB: 2},
	{Name: "pacman", SizeKB: 4},
	{Name: "phoenix", SizeKB: 8},
	{Name: "pitfall", SizeKB: 4},
	{Name: "pitfall2", SizeKB: 10.2490234375},
	{Name: "pong", SizeKB: 2},
	{Name: "pooyan", SizeKB: 4},
	{Name: "private_eye", SizeKB: 8},
	{Name: "qbert", SizeKB: 4},
	{Name: "riverraid", SizeKB: 4},
	{Name: "road_runner", SizeKB: 16},
	{Name: "robotank", SizeKB: 8},
	{Name: "seaquest", SizeKB: 4},
	{Name: "sir_lancelot", SizeKB: 8},
	{Name: "skiing", SizeKB: 2},
	{Name: "solaris", SizeKB: 16},
	{Name: "space_invaders", SizeKB: 4},
	{Name: "space_war", SizeKB: 2},
	{Name: "star_gunner", SizeKB: 4},
	{Name: "superman", SizeKB: 4},
	{Name: "surround", SizeKB: 2},
	{Name: "tennis", SizeKB: 2},
	{Name: "tetris", SizeKB: 2},
	{Name: "tic_tac_toe_3d", SizeKB: 2},
	{Name: "time_pilot", SizeKB: 8},
	{Name: "trondead", SizeKB: 4},
	{Name: "turmoil", SizeKB: 4},
	{Name: "tutankham", SizeKB: 8},
	{Name: "up_n_down", SizeKB: 8},
	{Name: "venture", SizeKB: 4},
	{Name: "video_checkers", SizeKB: 4},
	{Name: "video_chess", SizeKB: 4},
	{Name: "video_cube", SizeKB: 4},
	{Name: "video_pinball", SizeKB: 4},
	{Name: "warlords", SizeKB: 4},
	{Name: "wizard_of_wor", SizeKB: 4},
	{Name: "word_zapper", SizeKB: 4},
	{Name: "yars_revenge", SizeKB: 4},
	{Name: "zaxxon", SizeKB: 8},
}

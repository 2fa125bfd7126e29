// Code generated from the Linux kernel's input-event-codes.h key list; do not hand-edit the constant table.

package keycode

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Code is one member of the closed set of Linux kernel key identifiers.
// Its integer value matches the kernel's KEY_* constant, so it can be written
// directly into an input_event record.
type Code uint16

const (
	ESC Code = 1
	K1 Code = 2
	K2 Code = 3
	K3 Code = 4
	K4 Code = 5
	K5 Code = 6
	K6 Code = 7
	K7 Code = 8
	K8 Code = 9
	K9 Code = 10
	K0 Code = 11
	MINUS Code = 12
	EQUAL Code = 13
	BACKSPACE Code = 14
	TAB Code = 15
	Q Code = 16
	W Code = 17
	E Code = 18
	R Code = 19
	T Code = 20
	Y Code = 21
	U Code = 22
	I Code = 23
	O Code = 24
	P Code = 25
	LEFTBRACE Code = 26
	RIGHTBRACE Code = 27
	ENTER Code = 28
	LEFTCTRL Code = 29
	A Code = 30
	S Code = 31
	D Code = 32
	F Code = 33
	G Code = 34
	H Code = 35
	J Code = 36
	K Code = 37
	L Code = 38
	SEMICOLON Code = 39
	APOSTROPHE Code = 40
	GRAVE Code = 41
	LEFTSHIFT Code = 42
	BACKSLASH Code = 43
	Z Code = 44
	X Code = 45
	C Code = 46
	V Code = 47
	B Code = 48
	N Code = 49
	M Code = 50
	COMMA Code = 51
	DOT Code = 52
	SLASH Code = 53
	RIGHTSHIFT Code = 54
	KPASTERISK Code = 55
	LEFTALT Code = 56
	SPACE Code = 57
	CAPSLOCK Code = 58
	F1 Code = 59
	F2 Code = 60
	F3 Code = 61
	F4 Code = 62
	F5 Code = 63
	F6 Code = 64
	F7 Code = 65
	F8 Code = 66
	F9 Code = 67
	F10 Code = 68
	NUMLOCK Code = 69
	SCROLLLOCK Code = 70
	KP7 Code = 71
	KP8 Code = 72
	KP9 Code = 73
	KPMINUS Code = 74
	KP4 Code = 75
	KP5 Code = 76
	KP6 Code = 77
	KPPLUS Code = 78
	KP1 Code = 79
	KP2 Code = 80
	KP3 Code = 81
	KP0 Code = 82
	KPDOT Code = 83
	ZENKAKUHANKAKU Code = 85
	K102ND Code = 86
	F11 Code = 87
	F12 Code = 88
	RO Code = 89
	KATAKANA Code = 90
	HIRAGANA Code = 91
	HENKAN Code = 92
	KATAKANAHIRAGANA Code = 93
	MUHENKAN Code = 94
	KPJPCOMMA Code = 95
	KPENTER Code = 96
	RIGHTCTRL Code = 97
	KPSLASH Code = 98
	SYSRQ Code = 99
	RIGHTALT Code = 100
	LINEFEED Code = 101
	HOME Code = 102
	UP Code = 103
	PAGEUP Code = 104
	LEFT Code = 105
	RIGHT Code = 106
	END Code = 107
	DOWN Code = 108
	PAGEDOWN Code = 109
	INSERT Code = 110
	DELETE Code = 111
	MACRO Code = 112
	MUTE Code = 113
	VOLUMEDOWN Code = 114
	VOLUMEUP Code = 115
	POWER Code = 116
	KPEQUAL Code = 117
	KPPLUSMINUS Code = 118
	PAUSE Code = 119
	SCALE Code = 120
	KPCOMMA Code = 121
	HANGEUL Code = 122
	HANJA Code = 123
	YEN Code = 124
	LEFTMETA Code = 125
	RIGHTMETA Code = 126
	COMPOSE Code = 127
	STOP Code = 128
	AGAIN Code = 129
	PROPS Code = 130
	UNDO Code = 131
	FRONT Code = 132
	COPY Code = 133
	OPEN Code = 134
	PASTE Code = 135
	FIND Code = 136
	CUT Code = 137
	HELP Code = 138
	MENU Code = 139
	CALC Code = 140
	SETUP Code = 141
	SLEEP Code = 142
	WAKEUP Code = 143
	FILE Code = 144
	SENDFILE Code = 145
	DELETEFILE Code = 146
	XFER Code = 147
	PROG1 Code = 148
	PROG2 Code = 149
	WWW Code = 150
	MSDOS Code = 151
	COFFEE Code = 152
	ROTATE_DISPLAY Code = 153
	CYCLEWINDOWS Code = 154
	MAIL Code = 155
	BOOKMARKS Code = 156
	COMPUTER Code = 157
	BACK Code = 158
	FORWARD Code = 159
	CLOSECD Code = 160
	EJECTCD Code = 161
	EJECTCLOSECD Code = 162
	NEXTSONG Code = 163
	PLAYPAUSE Code = 164
	PREVIOUSSONG Code = 165
	STOPCD Code = 166
	RECORD Code = 167
	REWIND Code = 168
	PHONE Code = 169
	ISO Code = 170
	CONFIG Code = 171
	HOMEPAGE Code = 172
	REFRESH Code = 173
	EXIT Code = 174
	MOVE Code = 175
	EDIT Code = 176
	SCROLLUP Code = 177
	SCROLLDOWN Code = 178
	KPLEFTPAREN Code = 179
	KPRIGHTPAREN Code = 180
	NEW Code = 181
	REDO Code = 182
	F13 Code = 183
	F14 Code = 184
	F15 Code = 185
	F16 Code = 186
	F17 Code = 187
	F18 Code = 188
	F19 Code = 189
	F20 Code = 190
	F21 Code = 191
	F22 Code = 192
	F23 Code = 193
	F24 Code = 194
	PLAYCD Code = 200
	PAUSECD Code = 201
	PROG3 Code = 202
	PROG4 Code = 203
	DASHBOARD Code = 204
	SUSPEND Code = 205
	CLOSE Code = 206
	PLAY Code = 207
	FASTFORWARD Code = 208
	BASSBOOST Code = 209
	PRINT Code = 210
	HP Code = 211
	CAMERA Code = 212
	SOUND Code = 213
	QUESTION Code = 214
	EMAIL Code = 215
	CHAT Code = 216
	SEARCH Code = 217
	CONNECT Code = 218
	FINANCE Code = 219
	SPORT Code = 220
	SHOP Code = 221
	ALTERASE Code = 222
	CANCEL Code = 223
	BRIGHTNESSDOWN Code = 224
	BRIGHTNESSUP Code = 225
	MEDIA Code = 226
	SWITCHVIDEOMODE Code = 227
	KBDILLUMTOGGLE Code = 228
	KBDILLUMDOWN Code = 229
	KBDILLUMUP Code = 230
	SEND Code = 231
	REPLY Code = 232
	FORWARDMAIL Code = 233
	SAVE Code = 234
	DOCUMENTS Code = 235
	BATTERY Code = 236
	BLUETOOTH Code = 237
	WLAN Code = 238
	UWB Code = 239
	UNKNOWN Code = 240
	VIDEO_NEXT Code = 241
	VIDEO_PREV Code = 242
	BRIGHTNESS_CYCLE Code = 243
	BRIGHTNESS_AUTO Code = 244
	DISPLAY_OFF Code = 245
	WWAN Code = 246
	RFKILL Code = 247
	MICMUTE Code = 248
	OK Code = 352
	SELECT Code = 353
	GOTO Code = 354
	CLEAR Code = 355
	POWER2 Code = 356
	OPTION Code = 357
	INFO Code = 358
	TIME Code = 359
	VENDOR Code = 360
	ARCHIVE Code = 361
	PROGRAM Code = 362
	CHANNEL Code = 363
	FAVORITES Code = 364
	EPG Code = 365
	PVR Code = 366
	MHP Code = 367
	LANGUAGE Code = 368
	TITLE Code = 369
	SUBTITLE Code = 370
	ANGLE Code = 371
	FULL_SCREEN Code = 372
	MODE Code = 373
	KEYBOARD Code = 374
	ASPECT_RATIO Code = 375
	PC Code = 376
	TV Code = 377
	TV2 Code = 378
	VCR Code = 379
	VCR2 Code = 380
	SAT Code = 381
	SAT2 Code = 382
	CD Code = 383
	TAPE Code = 384
	RADIO Code = 385
	TUNER Code = 386
	PLAYER Code = 387
	TEXT Code = 388
	DVD Code = 389
	AUX Code = 390
	MP3 Code = 391
	AUDIO Code = 392
	VIDEO Code = 393
	DIRECTORY Code = 394
	LIST Code = 395
	MEMO Code = 396
	CALENDAR Code = 397
	RED Code = 398
	GREEN Code = 399
	YELLOW Code = 400
	BLUE Code = 401
	CHANNELUP Code = 402
	CHANNELDOWN Code = 403
	FIRST Code = 404
	LAST Code = 405
	AB Code = 406
	NEXT Code = 407
	RESTART Code = 408
	SLOW Code = 409
	SHUFFLE Code = 410
	BREAK Code = 411
	PREVIOUS Code = 412
	DIGITS Code = 413
	TEEN Code = 414
	TWEN Code = 415
	VIDEOPHONE Code = 416
	GAMES Code = 417
	ZOOMIN Code = 418
	ZOOMOUT Code = 419
	ZOOMRESET Code = 420
	WORDPROCESSOR Code = 421
	EDITOR Code = 422
	SPREADSHEET Code = 423
	GRAPHICSEDITOR Code = 424
	PRESENTATION Code = 425
	DATABASE Code = 426
	NEWS Code = 427
	VOICEMAIL Code = 428
	ADDRESSBOOK Code = 429
	MESSENGER Code = 430
	DISPLAYTOGGLE Code = 431
	SPELLCHECK Code = 432
	LOGOFF Code = 433
	DOLLAR Code = 434
	EURO Code = 435
	FRAMEBACK Code = 436
	FRAMEFORWARD Code = 437
	CONTEXT_MENU Code = 438
	MEDIA_REPEAT Code = 439
	K10CHANNELSUP Code = 440
	K10CHANNELSDOWN Code = 441
	IMAGES Code = 442
	NOTIFICATION_CENTER Code = 444
	PICKUP_PHONE Code = 445
	HANGUP_PHONE Code = 446
	DEL_EOL Code = 448
	DEL_EOS Code = 449
	INS_LINE Code = 450
	DEL_LINE Code = 451
	FN Code = 464
	FN_ESC Code = 465
	FN_F1 Code = 466
	FN_F2 Code = 467
	FN_F3 Code = 468
	FN_F4 Code = 469
	FN_F5 Code = 470
	FN_F6 Code = 471
	FN_F7 Code = 472
	FN_F8 Code = 473
	FN_F9 Code = 474
	FN_F10 Code = 475
	FN_F11 Code = 476
	FN_F12 Code = 477
	FN_1 Code = 478
	FN_2 Code = 479
	FN_D Code = 480
	FN_E Code = 481
	FN_F Code = 482
	FN_S Code = 483
	FN_B Code = 484
	FN_RIGHT_SHIFT Code = 485
	BRL_DOT1 Code = 497
	BRL_DOT2 Code = 498
	BRL_DOT3 Code = 499
	BRL_DOT4 Code = 500
	BRL_DOT5 Code = 501
	BRL_DOT6 Code = 502
	BRL_DOT7 Code = 503
	BRL_DOT8 Code = 504
	BRL_DOT9 Code = 505
	BRL_DOT10 Code = 506
	NUMERIC_0 Code = 512
	NUMERIC_1 Code = 513
	NUMERIC_2 Code = 514
	NUMERIC_3 Code = 515
	NUMERIC_4 Code = 516
	NUMERIC_5 Code = 517
	NUMERIC_6 Code = 518
	NUMERIC_7 Code = 519
	NUMERIC_8 Code = 520
	NUMERIC_9 Code = 521
	NUMERIC_STAR Code = 522
	NUMERIC_POUND Code = 523
	NUMERIC_A Code = 524
	NUMERIC_B Code = 525
	NUMERIC_C Code = 526
	NUMERIC_D Code = 527
	CAMERA_FOCUS Code = 528
	WPS_BUTTON Code = 529
	TOUCHPAD_TOGGLE Code = 530
	TOUCHPAD_ON Code = 531
	TOUCHPAD_OFF Code = 532
	CAMERA_ZOOMIN Code = 533
	CAMERA_ZOOMOUT Code = 534
	CAMERA_UP Code = 535
	CAMERA_DOWN Code = 536
	CAMERA_LEFT Code = 537
	CAMERA_RIGHT Code = 538
	ATTENDANT_ON Code = 539
	ATTENDANT_OFF Code = 540
	ATTENDANT_TOGGLE Code = 541
	LIGHTS_TOGGLE Code = 542
	ALS_TOGGLE Code = 560
	ROTATE_LOCK_TOGGLE Code = 561
	BUTTONCONFIG Code = 576
	TASKMANAGER Code = 577
	JOURNAL Code = 578
	CONTROLPANEL Code = 579
	APPSELECT Code = 580
	SCREENSAVER Code = 581
	VOICECOMMAND Code = 582
	ASSISTANT Code = 583
	KBD_LAYOUT_NEXT Code = 584
	BRIGHTNESS_MIN Code = 592
	BRIGHTNESS_MAX Code = 593
	KBDINPUTASSIST_PREV Code = 608
	KBDINPUTASSIST_NEXT Code = 609
	KBDINPUTASSIST_PREVGROUP Code = 610
	KBDINPUTASSIST_NEXTGROUP Code = 611
	KBDINPUTASSIST_ACCEPT Code = 612
	KBDINPUTASSIST_CANCEL Code = 613
	RIGHT_UP Code = 614
	RIGHT_DOWN Code = 615
	LEFT_UP Code = 616
	LEFT_DOWN Code = 617
	ROOT_MENU Code = 618
	MEDIA_TOP_MENU Code = 619
	NUMERIC_11 Code = 620
	NUMERIC_12 Code = 621
	AUDIO_DESC Code = 622
	K3D_MODE Code = 623
	NEXT_FAVORITE Code = 624
	STOP_RECORD Code = 625
	PAUSE_RECORD Code = 626
	VOD Code = 627
	UNMUTE Code = 628
	FASTREVERSE Code = 629
	SLOWREVERSE Code = 630
	DATA Code = 631
	ONSCREEN_KEYBOARD Code = 632
	PRIVACY_SCREEN_TOGGLE Code = 633
	SELECTIVE_SCREENSHOT Code = 634
	MACRO1 Code = 656
	MACRO2 Code = 657
	MACRO3 Code = 658
	MACRO4 Code = 659
	MACRO5 Code = 660
	MACRO6 Code = 661
	MACRO7 Code = 662
	MACRO8 Code = 663
	MACRO9 Code = 664
	MACRO10 Code = 665
	MACRO11 Code = 666
	MACRO12 Code = 667
	MACRO13 Code = 668
	MACRO14 Code = 669
	MACRO15 Code = 670
	MACRO16 Code = 671
	MACRO17 Code = 672
	MACRO18 Code = 673
	MACRO19 Code = 674
	MACRO20 Code = 675
	MACRO21 Code = 676
	MACRO22 Code = 677
	MACRO23 Code = 678
	MACRO24 Code = 679
	MACRO25 Code = 680
	MACRO26 Code = 681
	MACRO27 Code = 682
	MACRO28 Code = 683
	MACRO29 Code = 684
	MACRO30 Code = 685
	MACRO_RECORD_START Code = 688
	MACRO_RECORD_STOP Code = 689
	MACRO_PRESET_CYCLE Code = 690
	MACRO_PRESET1 Code = 691
	MACRO_PRESET2 Code = 692
	MACRO_PRESET3 Code = 693
	KBD_LCD_MENU1 Code = 696
	KBD_LCD_MENU2 Code = 697
	KBD_LCD_MENU3 Code = 698
	KBD_LCD_MENU4 Code = 699
	KBD_LCD_MENU5 Code = 700
)

// names maps each Code to its canonical textual name, used by String, Parse
// and JSON (de)serialization. Digit keys K0..K9 serialize as the bare digit,
// matching the convention used by layout JSON documents.
var names = map[Code]string{
	ESC: "ESC",
	K1: "1",
	K2: "2",
	K3: "3",
	K4: "4",
	K5: "5",
	K6: "6",
	K7: "7",
	K8: "8",
	K9: "9",
	K0: "0",
	MINUS: "MINUS",
	EQUAL: "EQUAL",
	BACKSPACE: "BACKSPACE",
	TAB: "TAB",
	Q: "Q",
	W: "W",
	E: "E",
	R: "R",
	T: "T",
	Y: "Y",
	U: "U",
	I: "I",
	O: "O",
	P: "P",
	LEFTBRACE: "LEFTBRACE",
	RIGHTBRACE: "RIGHTBRACE",
	ENTER: "ENTER",
	LEFTCTRL: "LEFTCTRL",
	A: "A",
	S: "S",
	D: "D",
	F: "F",
	G: "G",
	H: "H",
	J: "J",
	K: "K",
	L: "L",
	SEMICOLON: "SEMICOLON",
	APOSTROPHE: "APOSTROPHE",
	GRAVE: "GRAVE",
	LEFTSHIFT: "LEFTSHIFT",
	BACKSLASH: "BACKSLASH",
	Z: "Z",
	X: "X",
	C: "C",
	V: "V",
	B: "B",
	N: "N",
	M: "M",
	COMMA: "COMMA",
	DOT: "DOT",
	SLASH: "SLASH",
	RIGHTSHIFT: "RIGHTSHIFT",
	KPASTERISK: "KPASTERISK",
	LEFTALT: "LEFTALT",
	SPACE: "SPACE",
	CAPSLOCK: "CAPSLOCK",
	F1: "F1",
	F2: "F2",
	F3: "F3",
	F4: "F4",
	F5: "F5",
	F6: "F6",
	F7: "F7",
	F8: "F8",
	F9: "F9",
	F10: "F10",
	NUMLOCK: "NUMLOCK",
	SCROLLLOCK: "SCROLLLOCK",
	KP7: "KP7",
	KP8: "KP8",
	KP9: "KP9",
	KPMINUS: "KPMINUS",
	KP4: "KP4",
	KP5: "KP5",
	KP6: "KP6",
	KPPLUS: "KPPLUS",
	KP1: "KP1",
	KP2: "KP2",
	KP3: "KP3",
	KP0: "KP0",
	KPDOT: "KPDOT",
	ZENKAKUHANKAKU: "ZENKAKUHANKAKU",
	K102ND: "K102ND",
	F11: "F11",
	F12: "F12",
	RO: "RO",
	KATAKANA: "KATAKANA",
	HIRAGANA: "HIRAGANA",
	HENKAN: "HENKAN",
	KATAKANAHIRAGANA: "KATAKANAHIRAGANA",
	MUHENKAN: "MUHENKAN",
	KPJPCOMMA: "KPJPCOMMA",
	KPENTER: "KPENTER",
	RIGHTCTRL: "RIGHTCTRL",
	KPSLASH: "KPSLASH",
	SYSRQ: "SYSRQ",
	RIGHTALT: "RIGHTALT",
	LINEFEED: "LINEFEED",
	HOME: "HOME",
	UP: "UP",
	PAGEUP: "PAGEUP",
	LEFT: "LEFT",
	RIGHT: "RIGHT",
	END: "END",
	DOWN: "DOWN",
	PAGEDOWN: "PAGEDOWN",
	INSERT: "INSERT",
	DELETE: "DELETE",
	MACRO: "MACRO",
	MUTE: "MUTE",
	VOLUMEDOWN: "VOLUMEDOWN",
	VOLUMEUP: "VOLUMEUP",
	POWER: "POWER",
	KPEQUAL: "KPEQUAL",
	KPPLUSMINUS: "KPPLUSMINUS",
	PAUSE: "PAUSE",
	SCALE: "SCALE",
	KPCOMMA: "KPCOMMA",
	HANGEUL: "HANGEUL",
	HANJA: "HANJA",
	YEN: "YEN",
	LEFTMETA: "LEFTMETA",
	RIGHTMETA: "RIGHTMETA",
	COMPOSE: "COMPOSE",
	STOP: "STOP",
	AGAIN: "AGAIN",
	PROPS: "PROPS",
	UNDO: "UNDO",
	FRONT: "FRONT",
	COPY: "COPY",
	OPEN: "OPEN",
	PASTE: "PASTE",
	FIND: "FIND",
	CUT: "CUT",
	HELP: "HELP",
	MENU: "MENU",
	CALC: "CALC",
	SETUP: "SETUP",
	SLEEP: "SLEEP",
	WAKEUP: "WAKEUP",
	FILE: "FILE",
	SENDFILE: "SENDFILE",
	DELETEFILE: "DELETEFILE",
	XFER: "XFER",
	PROG1: "PROG1",
	PROG2: "PROG2",
	WWW: "WWW",
	MSDOS: "MSDOS",
	COFFEE: "COFFEE",
	ROTATE_DISPLAY: "ROTATE_DISPLAY",
	CYCLEWINDOWS: "CYCLEWINDOWS",
	MAIL: "MAIL",
	BOOKMARKS: "BOOKMARKS",
	COMPUTER: "COMPUTER",
	BACK: "BACK",
	FORWARD: "FORWARD",
	CLOSECD: "CLOSECD",
	EJECTCD: "EJECTCD",
	EJECTCLOSECD: "EJECTCLOSECD",
	NEXTSONG: "NEXTSONG",
	PLAYPAUSE: "PLAYPAUSE",
	PREVIOUSSONG: "PREVIOUSSONG",
	STOPCD: "STOPCD",
	RECORD: "RECORD",
	REWIND: "REWIND",
	PHONE: "PHONE",
	ISO: "ISO",
	CONFIG: "CONFIG",
	HOMEPAGE: "HOMEPAGE",
	REFRESH: "REFRESH",
	EXIT: "EXIT",
	MOVE: "MOVE",
	EDIT: "EDIT",
	SCROLLUP: "SCROLLUP",
	SCROLLDOWN: "SCROLLDOWN",
	KPLEFTPAREN: "KPLEFTPAREN",
	KPRIGHTPAREN: "KPRIGHTPAREN",
	NEW: "NEW",
	REDO: "REDO",
	F13: "F13",
	F14: "F14",
	F15: "F15",
	F16: "F16",
	F17: "F17",
	F18: "F18",
	F19: "F19",
	F20: "F20",
	F21: "F21",
	F22: "F22",
	F23: "F23",
	F24: "F24",
	PLAYCD: "PLAYCD",
	PAUSECD: "PAUSECD",
	PROG3: "PROG3",
	PROG4: "PROG4",
	DASHBOARD: "DASHBOARD",
	SUSPEND: "SUSPEND",
	CLOSE: "CLOSE",
	PLAY: "PLAY",
	FASTFORWARD: "FASTFORWARD",
	BASSBOOST: "BASSBOOST",
	PRINT: "PRINT",
	HP: "HP",
	CAMERA: "CAMERA",
	SOUND: "SOUND",
	QUESTION: "QUESTION",
	EMAIL: "EMAIL",
	CHAT: "CHAT",
	SEARCH: "SEARCH",
	CONNECT: "CONNECT",
	FINANCE: "FINANCE",
	SPORT: "SPORT",
	SHOP: "SHOP",
	ALTERASE: "ALTERASE",
	CANCEL: "CANCEL",
	BRIGHTNESSDOWN: "BRIGHTNESSDOWN",
	BRIGHTNESSUP: "BRIGHTNESSUP",
	MEDIA: "MEDIA",
	SWITCHVIDEOMODE: "SWITCHVIDEOMODE",
	KBDILLUMTOGGLE: "KBDILLUMTOGGLE",
	KBDILLUMDOWN: "KBDILLUMDOWN",
	KBDILLUMUP: "KBDILLUMUP",
	SEND: "SEND",
	REPLY: "REPLY",
	FORWARDMAIL: "FORWARDMAIL",
	SAVE: "SAVE",
	DOCUMENTS: "DOCUMENTS",
	BATTERY: "BATTERY",
	BLUETOOTH: "BLUETOOTH",
	WLAN: "WLAN",
	UWB: "UWB",
	UNKNOWN: "UNKNOWN",
	VIDEO_NEXT: "VIDEO_NEXT",
	VIDEO_PREV: "VIDEO_PREV",
	BRIGHTNESS_CYCLE: "BRIGHTNESS_CYCLE",
	BRIGHTNESS_AUTO: "BRIGHTNESS_AUTO",
	DISPLAY_OFF: "DISPLAY_OFF",
	WWAN: "WWAN",
	RFKILL: "RFKILL",
	MICMUTE: "MICMUTE",
	OK: "OK",
	SELECT: "SELECT",
	GOTO: "GOTO",
	CLEAR: "CLEAR",
	POWER2: "POWER2",
	OPTION: "OPTION",
	INFO: "INFO",
	TIME: "TIME",
	VENDOR: "VENDOR",
	ARCHIVE: "ARCHIVE",
	PROGRAM: "PROGRAM",
	CHANNEL: "CHANNEL",
	FAVORITES: "FAVORITES",
	EPG: "EPG",
	PVR: "PVR",
	MHP: "MHP",
	LANGUAGE: "LANGUAGE",
	TITLE: "TITLE",
	SUBTITLE: "SUBTITLE",
	ANGLE: "ANGLE",
	FULL_SCREEN: "FULL_SCREEN",
	MODE: "MODE",
	KEYBOARD: "KEYBOARD",
	ASPECT_RATIO: "ASPECT_RATIO",
	PC: "PC",
	TV: "TV",
	TV2: "TV2",
	VCR: "VCR",
	VCR2: "VCR2",
	SAT: "SAT",
	SAT2: "SAT2",
	CD: "CD",
	TAPE: "TAPE",
	RADIO: "RADIO",
	TUNER: "TUNER",
	PLAYER: "PLAYER",
	TEXT: "TEXT",
	DVD: "DVD",
	AUX: "AUX",
	MP3: "MP3",
	AUDIO: "AUDIO",
	VIDEO: "VIDEO",
	DIRECTORY: "DIRECTORY",
	LIST: "LIST",
	MEMO: "MEMO",
	CALENDAR: "CALENDAR",
	RED: "RED",
	GREEN: "GREEN",
	YELLOW: "YELLOW",
	BLUE: "BLUE",
	CHANNELUP: "CHANNELUP",
	CHANNELDOWN: "CHANNELDOWN",
	FIRST: "FIRST",
	LAST: "LAST",
	AB: "AB",
	NEXT: "NEXT",
	RESTART: "RESTART",
	SLOW: "SLOW",
	SHUFFLE: "SHUFFLE",
	BREAK: "BREAK",
	PREVIOUS: "PREVIOUS",
	DIGITS: "DIGITS",
	TEEN: "TEEN",
	TWEN: "TWEN",
	VIDEOPHONE: "VIDEOPHONE",
	GAMES: "GAMES",
	ZOOMIN: "ZOOMIN",
	ZOOMOUT: "ZOOMOUT",
	ZOOMRESET: "ZOOMRESET",
	WORDPROCESSOR: "WORDPROCESSOR",
	EDITOR: "EDITOR",
	SPREADSHEET: "SPREADSHEET",
	GRAPHICSEDITOR: "GRAPHICSEDITOR",
	PRESENTATION: "PRESENTATION",
	DATABASE: "DATABASE",
	NEWS: "NEWS",
	VOICEMAIL: "VOICEMAIL",
	ADDRESSBOOK: "ADDRESSBOOK",
	MESSENGER: "MESSENGER",
	DISPLAYTOGGLE: "DISPLAYTOGGLE",
	SPELLCHECK: "SPELLCHECK",
	LOGOFF: "LOGOFF",
	DOLLAR: "DOLLAR",
	EURO: "EURO",
	FRAMEBACK: "FRAMEBACK",
	FRAMEFORWARD: "FRAMEFORWARD",
	CONTEXT_MENU: "CONTEXT_MENU",
	MEDIA_REPEAT: "MEDIA_REPEAT",
	K10CHANNELSUP: "K10CHANNELSUP",
	K10CHANNELSDOWN: "K10CHANNELSDOWN",
	IMAGES: "IMAGES",
	NOTIFICATION_CENTER: "NOTIFICATION_CENTER",
	PICKUP_PHONE: "PICKUP_PHONE",
	HANGUP_PHONE: "HANGUP_PHONE",
	DEL_EOL: "DEL_EOL",
	DEL_EOS: "DEL_EOS",
	INS_LINE: "INS_LINE",
	DEL_LINE: "DEL_LINE",
	FN: "FN",
	FN_ESC: "FN_ESC",
	FN_F1: "FN_F1",
	FN_F2: "FN_F2",
	FN_F3: "FN_F3",
	FN_F4: "FN_F4",
	FN_F5: "FN_F5",
	FN_F6: "FN_F6",
	FN_F7: "FN_F7",
	FN_F8: "FN_F8",
	FN_F9: "FN_F9",
	FN_F10: "FN_F10",
	FN_F11: "FN_F11",
	FN_F12: "FN_F12",
	FN_1: "FN_1",
	FN_2: "FN_2",
	FN_D: "FN_D",
	FN_E: "FN_E",
	FN_F: "FN_F",
	FN_S: "FN_S",
	FN_B: "FN_B",
	FN_RIGHT_SHIFT: "FN_RIGHT_SHIFT",
	BRL_DOT1: "BRL_DOT1",
	BRL_DOT2: "BRL_DOT2",
	BRL_DOT3: "BRL_DOT3",
	BRL_DOT4: "BRL_DOT4",
	BRL_DOT5: "BRL_DOT5",
	BRL_DOT6: "BRL_DOT6",
	BRL_DOT7: "BRL_DOT7",
	BRL_DOT8: "BRL_DOT8",
	BRL_DOT9: "BRL_DOT9",
	BRL_DOT10: "BRL_DOT10",
	NUMERIC_0: "NUMERIC_0",
	NUMERIC_1: "NUMERIC_1",
	NUMERIC_2: "NUMERIC_2",
	NUMERIC_3: "NUMERIC_3",
	NUMERIC_4: "NUMERIC_4",
	NUMERIC_5: "NUMERIC_5",
	NUMERIC_6: "NUMERIC_6",
	NUMERIC_7: "NUMERIC_7",
	NUMERIC_8: "NUMERIC_8",
	NUMERIC_9: "NUMERIC_9",
	NUMERIC_STAR: "NUMERIC_STAR",
	NUMERIC_POUND: "NUMERIC_POUND",
	NUMERIC_A: "NUMERIC_A",
	NUMERIC_B: "NUMERIC_B",
	NUMERIC_C: "NUMERIC_C",
	NUMERIC_D: "NUMERIC_D",
	CAMERA_FOCUS: "CAMERA_FOCUS",
	WPS_BUTTON: "WPS_BUTTON",
	TOUCHPAD_TOGGLE: "TOUCHPAD_TOGGLE",
	TOUCHPAD_ON: "TOUCHPAD_ON",
	TOUCHPAD_OFF: "TOUCHPAD_OFF",
	CAMERA_ZOOMIN: "CAMERA_ZOOMIN",
	CAMERA_ZOOMOUT: "CAMERA_ZOOMOUT",
	CAMERA_UP: "CAMERA_UP",
	CAMERA_DOWN: "CAMERA_DOWN",
	CAMERA_LEFT: "CAMERA_LEFT",
	CAMERA_RIGHT: "CAMERA_RIGHT",
	ATTENDANT_ON: "ATTENDANT_ON",
	ATTENDANT_OFF: "ATTENDANT_OFF",
	ATTENDANT_TOGGLE: "ATTENDANT_TOGGLE",
	LIGHTS_TOGGLE: "LIGHTS_TOGGLE",
	ALS_TOGGLE: "ALS_TOGGLE",
	ROTATE_LOCK_TOGGLE: "ROTATE_LOCK_TOGGLE",
	BUTTONCONFIG: "BUTTONCONFIG",
	TASKMANAGER: "TASKMANAGER",
	JOURNAL: "JOURNAL",
	CONTROLPANEL: "CONTROLPANEL",
	APPSELECT: "APPSELECT",
	SCREENSAVER: "SCREENSAVER",
	VOICECOMMAND: "VOICECOMMAND",
	ASSISTANT: "ASSISTANT",
	KBD_LAYOUT_NEXT: "KBD_LAYOUT_NEXT",
	BRIGHTNESS_MIN: "BRIGHTNESS_MIN",
	BRIGHTNESS_MAX: "BRIGHTNESS_MAX",
	KBDINPUTASSIST_PREV: "KBDINPUTASSIST_PREV",
	KBDINPUTASSIST_NEXT: "KBDINPUTASSIST_NEXT",
	KBDINPUTASSIST_PREVGROUP: "KBDINPUTASSIST_PREVGROUP",
	KBDINPUTASSIST_NEXTGROUP: "KBDINPUTASSIST_NEXTGROUP",
	KBDINPUTASSIST_ACCEPT: "KBDINPUTASSIST_ACCEPT",
	KBDINPUTASSIST_CANCEL: "KBDINPUTASSIST_CANCEL",
	RIGHT_UP: "RIGHT_UP",
	RIGHT_DOWN: "RIGHT_DOWN",
	LEFT_UP: "LEFT_UP",
	LEFT_DOWN: "LEFT_DOWN",
	ROOT_MENU: "ROOT_MENU",
	MEDIA_TOP_MENU: "MEDIA_TOP_MENU",
	NUMERIC_11: "NUMERIC_11",
	NUMERIC_12: "NUMERIC_12",
	AUDIO_DESC: "AUDIO_DESC",
	K3D_MODE: "K3D_MODE",
	NEXT_FAVORITE: "NEXT_FAVORITE",
	STOP_RECORD: "STOP_RECORD",
	PAUSE_RECORD: "PAUSE_RECORD",
	VOD: "VOD",
	UNMUTE: "UNMUTE",
	FASTREVERSE: "FASTREVERSE",
	SLOWREVERSE: "SLOWREVERSE",
	DATA: "DATA",
	ONSCREEN_KEYBOARD: "ONSCREEN_KEYBOARD",
	PRIVACY_SCREEN_TOGGLE: "PRIVACY_SCREEN_TOGGLE",
	SELECTIVE_SCREENSHOT: "SELECTIVE_SCREENSHOT",
	MACRO1: "MACRO1",
	MACRO2: "MACRO2",
	MACRO3: "MACRO3",
	MACRO4: "MACRO4",
	MACRO5: "MACRO5",
	MACRO6: "MACRO6",
	MACRO7: "MACRO7",
	MACRO8: "MACRO8",
	MACRO9: "MACRO9",
	MACRO10: "MACRO10",
	MACRO11: "MACRO11",
	MACRO12: "MACRO12",
	MACRO13: "MACRO13",
	MACRO14: "MACRO14",
	MACRO15: "MACRO15",
	MACRO16: "MACRO16",
	MACRO17: "MACRO17",
	MACRO18: "MACRO18",
	MACRO19: "MACRO19",
	MACRO20: "MACRO20",
	MACRO21: "MACRO21",
	MACRO22: "MACRO22",
	MACRO23: "MACRO23",
	MACRO24: "MACRO24",
	MACRO25: "MACRO25",
	MACRO26: "MACRO26",
	MACRO27: "MACRO27",
	MACRO28: "MACRO28",
	MACRO29: "MACRO29",
	MACRO30: "MACRO30",
	MACRO_RECORD_START: "MACRO_RECORD_START",
	MACRO_RECORD_STOP: "MACRO_RECORD_STOP",
	MACRO_PRESET_CYCLE: "MACRO_PRESET_CYCLE",
	MACRO_PRESET1: "MACRO_PRESET1",
	MACRO_PRESET2: "MACRO_PRESET2",
	MACRO_PRESET3: "MACRO_PRESET3",
	KBD_LCD_MENU1: "KBD_LCD_MENU1",
	KBD_LCD_MENU2: "KBD_LCD_MENU2",
	KBD_LCD_MENU3: "KBD_LCD_MENU3",
	KBD_LCD_MENU4: "KBD_LCD_MENU4",
	KBD_LCD_MENU5: "KBD_LCD_MENU5",
}

var byName map[string]Code

func init() {
	byName = make(map[string]Code, len(names))
	for code, name := range names {
		byName[name] = code
	}
}

// String returns the canonical uppercase name for c, or a numeric
// placeholder such as "CODE(9001)" if c is outside the known set.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE(%d)", uint16(c))
}

// Parse looks up a Code by its canonical name (e.g. "A", "LEFTSHIFT", "1").
// It returns an error if name does not match any known key.
func Parse(name string) (Code, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown key code: %q", name)
}

// MarshalJSON renders a Code as its canonical string name.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a Code from its canonical string name.
func (c *Code) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MaxKeyBit is the highest key code the synthetic device advertises
// capability for (inclusive), mirroring the kernel's own KEY_MAX-ish
// practical ceiling used by uinput device creation.
const MaxKeyBit = 561

// modifierKeys is the set of KeyCodes that are plain keyboard modifiers
// rather than action keys. An action mapping is one whose last `to` key
// falls outside this set.
var modifierKeys = map[Code]bool{
	LEFTSHIFT:  true,
	RIGHTSHIFT: true,
	LEFTCTRL:   true,
	RIGHTCTRL:  true,
	LEFTALT:    true,
	RIGHTALT:   true,
	LEFTMETA:   true,
	RIGHTMETA:  true,
}

// IsModifier reports whether c is one of the eight plain modifier keys.
func IsModifier(c Code) bool {
	return modifierKeys[c]
}

// IsActionKey reports whether c is anything other than a plain modifier.
func IsActionKey(c Code) bool {
	return !modifierKeys[c]
}

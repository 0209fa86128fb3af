package win32

// Window messages. Names and values follow the winuser.h definitions.
const (
	WM_NULL            = 0x0000
	WM_CREATE          = 0x0001
	WM_DESTROY         = 0x0002
	WM_MOVE            = 0x0003
	WM_SIZE            = 0x0005
	WM_ACTIVATE        = 0x0006
	WM_SETFOCUS        = 0x0007
	WM_KILLFOCUS       = 0x0008
	WM_ENABLE          = 0x000A
	WM_PAINT           = 0x000F
	WM_CLOSE           = 0x0010
	WM_QUIT            = 0x0012
	WM_ERASEBKGND      = 0x0014
	WM_SHOWWINDOW      = 0x0018
	WM_SETCURSOR       = 0x0020
	WM_INPUTLANGCHANGE = 0x0051
	WM_NCCREATE        = 0x0081
	WM_NCDESTROY       = 0x0082
	WM_NCCALCSIZE      = 0x0083
	WM_KEYDOWN         = 0x0100
	WM_KEYUP           = 0x0101
	WM_CHAR            = 0x0102
	WM_SYSKEYDOWN      = 0x0104
	WM_SYSKEYUP        = 0x0105
	WM_SYSCHAR         = 0x0106
	WM_COMMAND         = 0x0111
	WM_TIMER           = 0x0113
	WM_MOUSEMOVE       = 0x0200
	WM_LBUTTONDOWN     = 0x0201
	WM_LBUTTONUP       = 0x0202
	WM_RBUTTONDOWN     = 0x0204
	WM_RBUTTONUP       = 0x0205
	WM_MOUSEWHEEL      = 0x020A

	// WM_USER through WM_APP-1 is the range for private window-class
	// messages; WM_APP and above is for application-defined messages.
	WM_USER = 0x0400
	WM_APP  = 0x8000
)

// Window styles (the dwStyle parameter of window creation).
const (
	WS_OVERLAPPED   = 0x00000000
	WS_POPUP        = 0x80000000
	WS_CHILD        = 0x40000000
	WS_MINIMIZE     = 0x20000000
	WS_VISIBLE      = 0x10000000
	WS_DISABLED     = 0x08000000
	WS_CLIPSIBLINGS = 0x04000000
	WS_CLIPCHILDREN = 0x02000000
	WS_MAXIMIZE     = 0x01000000
	WS_CAPTION      = 0x00C00000
	WS_BORDER       = 0x00800000
	WS_DLGFRAME     = 0x00400000
	WS_VSCROLL      = 0x00200000
	WS_HSCROLL      = 0x00100000
	WS_SYSMENU      = 0x00080000
	WS_THICKFRAME   = 0x00040000
	WS_MINIMIZEBOX  = 0x00020000
	WS_MAXIMIZEBOX  = 0x00010000

	WS_OVERLAPPEDWINDOW = WS_OVERLAPPED | WS_CAPTION | WS_SYSMENU |
		WS_THICKFRAME | WS_MINIMIZEBOX | WS_MAXIMIZEBOX
)

// Extended window styles (the dwExStyle parameter of window creation).
const (
	WS_EX_TOPMOST    = 0x00000008
	WS_EX_TOOLWINDOW = 0x00000080
	WS_EX_WINDOWEDGE = 0x00000100
	WS_EX_CLIENTEDGE = 0x00000200
	WS_EX_APPWINDOW  = 0x00040000

	// WS_EX_NOREDIRECTIONBITMAP disables the redirection bitmap; useful for
	// windows that render only through a swapchain.
	WS_EX_NOREDIRECTIONBITMAP = 0x00200000
)

// Window class styles (the style field of class registration).
const (
	CS_VREDRAW  = 0x0001
	CS_HREDRAW  = 0x0002
	CS_DBLCLKS  = 0x0008
	CS_OWNDC    = 0x0020
	CS_CLASSDC  = 0x0040
	CS_PARENTDC = 0x0080
	CS_SAVEBITS = 0x0800
)

// ShowWindow commands.
const (
	SW_HIDE          = 0
	SW_SHOWNORMAL    = 1
	SW_SHOWMINIMIZED = 2
	SW_MAXIMIZE      = 3
	SW_SHOW          = 5
	SW_MINIMIZE      = 6
	SW_SHOWDEFAULT   = 10
)

// Per-window data indices for the window-long slots.
const (
	GWLP_USERDATA = -21
	GWLP_WNDPROC  = -4
	GWL_STYLE     = -16
	GWL_EXSTYLE   = -20
)

// CW_USEDEFAULT lets the system choose a window position or size field.
const CW_USEDEFAULT = int32(-0x80000000)

// DLGWINDOWEXTRA is the WndExtra byte count required for dialog windows.
const DLGWINDOWEXTRA = 30

// Stock cursor and icon resource ids, for the name argument of the cursor
// and icon loading calls.
const (
	IDC_ARROW uintptr = 32512
	IDC_IBEAM uintptr = 32513
	IDC_WAIT  uintptr = 32514
	IDC_CROSS uintptr = 32515
	IDC_HAND  uintptr = 32649

	IDI_APPLICATION uintptr = 32512
	IDI_WINLOGO     uintptr = 32517
)

// COLOR_WINDOW is the system window-background color index; the class
// background brush convention is the index plus one.
const COLOR_WINDOW = 5

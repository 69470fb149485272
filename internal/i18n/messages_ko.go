package i18n

var koMessages = map[string]string{
	"error.network":  "네트워크 오류가 발생했습니다.",
	"error.timeout":  "요청 시간이 초과되었습니다.",
	"error.login":    "로그인 중 오류가 발생했습니다.",
	"error.register": "회원가입 중 오류가 발생했습니다.",
	"error.oauth":    "소셜 로그인 중 오류가 발생했습니다.",

	"app.title":       "아주맛집",
	"nav.home":        "홈",
	"nav.list":        "맛집 목록",
	"nav.popular":     "인기 맛집",
	"nav.submit":      "맛집 제보",
	"nav.dashboard":   "대시보드",
	"nav.login":       "로그인",
	"nav.register":    "회원가입",
	"nav.logout":      "로그아웃",
	"nav.checking":    "확인 중...",
	"nav.admin_badge": "(관리자)",

	"guard.pending":      "로그인 상태를 확인하고 있습니다...",
	"guard.redirecting":  "로그인 페이지로 이동합니다...",
	"guard.denied_title": "접근 권한이 없습니다",
	"guard.denied_body":  "이 페이지는 관리자만 이용할 수 있습니다.",
	"guard.denied_help":  "esc: 뒤로 가기",

	"flash.logged_in":          "로그인되었습니다.",
	"flash.logged_out":         "로그아웃되었습니다.",
	"flash.registered":         "회원가입이 완료되었습니다.",
	"flash.server_unreachable": "서버에 연결할 수 없습니다.",

	"common.loading": "불러오는 중...",
	"common.saving":  "저장 중...",
	"format.date":    "2006년 1월 2일",

	"home.tagline":  "아주대학교 주변 맛집을 한눈에",
	"home.greeting": "안녕하세요, %s님!",
	"home.help":     "enter: 맛집 목록 · p: 인기 맛집 · 숫자/alt+숫자: 메뉴 이동",

	"col.name":     "이름",
	"col.category": "카테고리",
	"col.location": "위치",
	"col.price":    "가격대",
	"col.rating":   "평점",
	"col.likes":    "좋아요",

	"list.title":              "맛집 목록",
	"list.all_categories":     "전체",
	"list.filter_placeholder": "이름, 카테고리, 위치로 검색",
	"list.empty":              "등록된 맛집이 없습니다.",
	"list.count":              "%d / %d곳",
	"list.load_failed":        "맛집 목록을 불러오지 못했습니다.",
	"list.help":               "↑/↓: 이동 · enter: 상세 · /: 검색 · c: 카테고리 · r: 새로고침 · esc: 뒤로",

	"popular.title": "인기 맛집",
	"popular.likes": "♥ %d",
	"popular.help":  "↑/↓: 이동 · enter: 상세 · esc: 뒤로",

	"detail.description": "소개",
	"detail.menu":        "추천 메뉴",
	"detail.load_failed": "맛집 정보를 불러오지 못했습니다.",
	"detail.help":        "↑/↓: 스크롤 · esc: 뒤로",

	"field.email":            "이메일",
	"field.password":         "비밀번호",
	"field.password_confirm": "비밀번호 확인",
	"field.name":             "이름",
	"field.provider":         "가입 방식",
	"field.role":             "권한",
	"field.joined":           "가입일",
	"field.restaurant_name":  "가게 이름",
	"field.review":           "한줄평",
	"field.submitter":        "제보자",
	"field.status":           "상태",
	"field.submitted":        "제보일",

	"provider.local":  "이메일",
	"provider.google": "구글",
	"provider.naver":  "네이버",

	"role.user":  "일반",
	"role.admin": "관리자",

	"validate.required":          "필수 항목을 모두 입력해주세요.",
	"validate.email":             "올바른 이메일 형식이 아닙니다.",
	"validate.name_length":       "이름은 %d자 이상이어야 합니다.",
	"validate.password_length":   "비밀번호는 %d자 이상이어야 합니다.",
	"validate.password_mismatch": "비밀번호가 일치하지 않습니다.",
	"validate.category":          "카테고리는 다음 중 하나여야 합니다: %s",
	"validate.rating":            "평점은 0에서 5 사이의 숫자여야 합니다.",

	"login.title":         "로그인",
	"login.busy":          "로그인 중...",
	"login.return_to":     "로그인 후 %s(으)로 돌아갑니다.",
	"login.oauth_divider": "또는 소셜 계정으로 로그인",
	"login.oauth_waiting": "브라우저에서 로그인을 계속해주세요. 브라우저가 열리지 않으면 아래 주소를 직접 여세요.",
	"login.oauth_help":    "esc: 취소",
	"login.oauth_timeout": "소셜 로그인 시간이 초과되었습니다. 다시 시도해주세요.",
	"login.help":          "tab: 다음 칸 · enter: 로그인 · esc: 뒤로",

	"register.title": "회원가입",
	"register.busy":  "가입 중...",
	"register.help":  "tab: 다음 칸 · enter: 가입하기 · esc: 뒤로",

	"dashboard.title":              "대시보드",
	"dashboard.greeting":           "%s님, 환영합니다!",
	"dashboard.action_list":        "맛집 둘러보기",
	"dashboard.action_submit":      "맛집 제보하기",
	"dashboard.action_admin":       "관리자 페이지",
	"dashboard.action_submissions": "제보 관리",

	"submit.title":                "맛집 제보",
	"submit.subtitle":             "알고 있는 맛집을 알려주세요. 관리자 확인 후 등록됩니다.",
	"submit.location_placeholder": "예: 아주대 정문 앞",
	"submit.menu_placeholder":     "쉼표로 구분 (예: 김치찌개, 제육볶음)",
	"submit.done":                 "제보가 접수되었습니다. 감사합니다!",
	"submit.failed":               "제보를 접수하지 못했습니다.",
	"submit.sent_count":           "이번에 %d건을 제보했습니다.",
	"submit.help":                 "tab: 다음 칸 · enter: 제출 · esc: 뒤로",

	"admin.title":            "관리자 페이지",
	"admin.tab_restaurants":  "맛집 (%d)",
	"admin.tab_users":        "회원 (%d)",
	"admin.users_failed":     "회원 목록을 불러오지 못했습니다.",
	"admin.action_failed":    "요청을 처리하지 못했습니다.",
	"admin.confirm_delete":   "%s을(를) 삭제할까요?",
	"admin.deleted":          "%s을(를) 삭제했습니다.",
	"admin.created":          "%s을(를) 등록했습니다.",
	"admin.updated":          "%s을(를) 수정했습니다.",
	"admin.confirm_role":     "%s님의 권한을 %s(으)로 변경할까요?",
	"admin.role_changed":     "%s님의 권한을 %s(으)로 변경했습니다.",
	"admin.self_role":        "자신의 권한은 변경할 수 없습니다.",
	"admin.form_create":      "새 맛집 등록",
	"admin.form_edit":        "맛집 수정",
	"admin.form_help":        "tab: 다음 칸 · enter: 저장 · esc: 취소",
	"admin.help_restaurants": "tab: 회원 탭 · n: 등록 · e: 수정 · d: 삭제 · enter: 상세 · r: 새로고침 · esc: 뒤로",
	"admin.help_users":       "tab: 맛집 탭 · t: 권한 변경 · r: 새로고침 · esc: 뒤로",

	"status.pending":  "대기",
	"status.approved": "승인",
	"status.rejected": "거절",
	"status.all":      "전체",

	"submissions.title":           "제보 관리",
	"submissions.empty":           "제보가 없습니다.",
	"submissions.load_failed":     "제보 목록을 불러오지 못했습니다.",
	"submissions.confirm_approve": "%s 제보를 승인하고 맛집으로 등록할까요?",
	"submissions.confirm_reject":  "%s 제보를 거절할까요?",
	"submissions.confirm_delete":  "%s 제보를 삭제할까요?",
	"submissions.approved":        "%s 제보를 승인했습니다.",
	"submissions.approve_partial": "%s 맛집은 이미 등록되었지만 제보 상태를 바꾸지 못했습니다. 다시 승인하면 중복 등록됩니다.",
	"submissions.rejected":        "%s 제보를 거절했습니다.",
	"submissions.deleted":         "%s 제보를 삭제했습니다.",
	"submissions.help":            "tab/←→: 상태 필터 · a: 승인 · x: 거절 · d: 삭제 · r: 새로고침 · esc: 뒤로",

	"notfound.title": "페이지를 찾을 수 없습니다",
	"notfound.body":  "요청한 화면이 존재하지 않습니다.",
	"notfound.help":  "enter: 홈으로 · esc: 뒤로",
}

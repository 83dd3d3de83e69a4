package bot

const helpColor = 0x0099ff

// helpEmbeds is the three-page command reference, sent one embed per
// message so each page renders separately.
var helpEmbeds = []*Embed{
	{
		Color:       helpColor,
		Title:       "📖 DX3bot 명령어 목록 (1/3)",
		Description: "DX3bot의 주요 기능을 안내합니다.",
		Fields: []EmbedField{
			{
				Name: "📌 **캐릭터 관리**",
				Value: "> `!시트입력` `\"캐릭터 이름\"` 항목1 값1 항목2 값2 ...  \n" +
					"> 새로운 캐릭터를 등록하거나 기존 캐릭터 정보를 수정합니다.\n" +
					"> **예시:** `!시트입력 \"캐릭터 이름\" 육체 3 감각 6`  \n" +
					"> `!지정` `\"캐릭터 이름\"` - 특정 캐릭터를 활성화합니다.  \n" +
					"> `!지정해제` - 현재 활성화된 캐릭터를 해제합니다.  \n" +
					"> `!시트확인` - 현재 활성 캐릭터의 정보를 확인합니다.",
			},
			{
				Name: "📌 **상태 변경**",
				Value: "> `!침식률+N`, `!HP-10`  \n" +
					"> 특정 능력치 값을 증가/감소/설정합니다.  \n" +
					"> **예시:** `!침식률+5`",
			},
			{
				Name: "🎲 **판정 시스템**",
				Value: "> `!판정` `[항목]` - 해당 능력으로 주사위를 굴립니다.  \n" +
					"> 침식D가 자동 적용됩니다.  \n" +
					"> **예시:** `!판정 백병`",
			},
			{
				Name:  "⚔ **등장 침식**",
				Value: "> `!등침`, `!등장침식` - 등장 시 `1d10`을 굴려 침식률을 추가합니다.",
			},
		},
	},
	{
		Color: helpColor,
		Title: "📖 DX3bot 명령어 목록 (2/3)",
		Fields: []EmbedField{
			{
				Name: "🎭 **캐릭터 상세 설정**",
				Value: "> `!이모지` `[이모지]` - 캐릭터의 이모지를 설정합니다.  \n" +
					"> `!커버` `[이름]` - 캐릭터의 커버를 설정합니다.  \n" +
					"> `!웍스` `[이름]` - 캐릭터의 웍스를 설정합니다.  \n" +
					"> `!브리드` `[퓨어/크로스/트라이]` - 브리드를 설정합니다.  \n" +
					"> `!신드롬` `[신드롬1]` `[신드롬2]` `[신드롬3]` - 신드롬을 설정합니다.  \n" +
					"> `!각성` `[이름]` - 캐릭터의 각성을 설정합니다.  \n" +
					"> `!충동` `[이름]` - 캐릭터의 충동을 설정합니다.  \n" +
					"> `!D로` `[번호]` `[이름]` - D-Lois를 설정합니다.  \n" +
					"> **예시:** `!D로 98 Legacy: Dream of Abyssal City`",
			},
			{
				Name: "⚔ **콤보 시스템**",
				Value: "> `!콤보` `\"콤보 이름\"` `[침식률 조건]` `[콤보 데이터]`  \n" +
					"> 특정 침식률에 따라 콤보를 저장합니다.  \n" +
					"> **침식률 조건 작성법:**  \n" +
					"> - `99↓` : 침식률이 **99 이하**일 때 적용  \n" +
					"> - `100↑` : 침식률이 **100 이상**일 때 적용  \n" +
					"> - `130↑` : 침식률이 **130 이상**일 때 적용  \n" +
					"> **예시:** `!콤보 \"연속 사격\" 99↓ 《C: 발로르(2) + 흑의 철퇴(4)》`  \n" +
					"> `!@\"콤보 이름\"` - 침식률에 맞는 콤보를 자동 검색 후 출력",
			},
		},
	},
	{
		Color: helpColor,
		Title: "📖 DX3bot 명령어 목록 (3/3)",
		Fields: []EmbedField{
			{
				Name: "🔹 **로이스 시스템**",
				Value: "> `!로이스` `\"이름\"` `[P감정]` `[N감정]` `[내용]` - 새로운 로이스를 추가합니다.  \n" +
					"> **P 감정을 강조하려면 감정 뒤에 `*`을 추가하세요.**  \n" +
					"> **예시:** `!로이스 \"배신자\" 증오* 분노 나를 배신한 동료`  \n" +
					"> **출력 예시:**  \n" +
					"> > **배신자** | 【P: 증오】 / N: 분노 | 나를 배신한 동료  \n" +
					"> `!로이스삭제` `\"이름\"` - 해당 로이스 삭제  \n" +
					"> `!타이터스` `\"이름\"` - 해당 로이스를 타이터스로 변환",
			},
			{
				Name: "🔧 **관리 명령어**",
				Value: "> `!리셋` - 현재 캐릭터의 모든 데이터를 초기화합니다.  \n" +
					"> `!리셋 콤보` - 콤보 데이터만 초기화  \n" +
					"> `!리셋 로이스` - 로이스 데이터만 초기화  \n" +
					"> `!캐릭터삭제` `\"이름\"` - 특정 캐릭터 데이터를 삭제",
			},
		},
		Footer: "📌 이상이 있다면 언제든 오샤(@TRPG_sha)로 DM 해주세요!",
	},
}

func (d *Dispatcher) handleHelp(ev Event) error {
	for _, e := range helpEmbeds {
		if err := d.gw.SendEmbeds(ev.ChannelID, []*Embed{e}); err != nil {
			d.notifyDeliveryFailure(ev, err)
			return nil
		}
	}
	return nil
}
